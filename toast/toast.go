package toast

import (
	"net/http"

	"storefront/apiclient"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast is a transient notification for the user.
type Toast struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Action names the user action a toast reports on.
type Action string

const (
	Login          Action = "Login"
	Register       Action = "Registration"
	Logout         Action = "Logout"
	ForgotPassword Action = "Password reset request"
	ResetPassword  Action = "Password reset"
	ChangePassword Action = "Password change"
	VerifyEmail    Action = "Email verification"
	CreateCourse   Action = "Course creation"
	UpdateCourse   Action = "Course update"
	DeleteCourse   Action = "Course deletion"
	PublishCourse  Action = "Publishing"
	ApproveCourse  Action = "Course review"
	CreateModule   Action = "Module creation"
	UpdateModule   Action = "Module update"
	DeleteModule   Action = "Module deletion"
	CreateVideo    Action = "Video upload"
	UpdateVideo    Action = "Video update"
	DeleteVideo    Action = "Video deletion"
	UpdateProfile  Action = "Profile update"
	UpdateUser     Action = "User update"
	DeleteUser     Action = "User deletion"
	Purchase       Action = "Purchase"
	Contact        Action = "Message"
	LoadAccount    Action = "Loading your account"
)

const (
	MsgRateLimited     = "Too many requests. Please wait a moment and try again."
	MsgSessionExpired  = "Your session has expired. Please log in again."
	MsgDuplicateVideo  = "A video with this number already exists in this module. Please choose another number."
	MsgDuplicateModule = "A module with this number already exists in this course. Please choose another number."
	MsgEmailTaken      = "An account with this email already exists."
	MsgAlreadyEnrolled = "You are already enrolled in this course."
	MsgBadCredentials  = "Invalid email or password."
	MsgNotVerified     = "Your account is not verified or has been deactivated."
	MsgInvalidLink     = "This link is invalid or has expired."
)

// FromError picks the message for a failed action. Known server rejections get a
// specific message; everything else gets a generic one.
func FromError(action Action, err error) Toast {
	return Toast{Kind: KindError, Message: message(action, err)}
}

func message(action Action, err error) string {
	status := apiclient.StatusOf(err)

	if status == http.StatusTooManyRequests {
		return MsgRateLimited
	}
	if apiclient.IsJWTExpired(err) {
		return MsgSessionExpired
	}

	switch status {
	case http.StatusConflict:
		switch action {
		case CreateVideo, UpdateVideo:
			return MsgDuplicateVideo
		case CreateModule, UpdateModule:
			return MsgDuplicateModule
		case Register:
			return MsgEmailTaken
		case Purchase:
			return MsgAlreadyEnrolled
		}
	case http.StatusUnauthorized:
		if action == Login {
			return MsgBadCredentials
		}
	case http.StatusForbidden:
		if action == Login {
			return MsgNotVerified
		}
	case http.StatusBadRequest, http.StatusNotFound, http.StatusGone:
		if action == ResetPassword || action == VerifyEmail {
			return MsgInvalidLink
		}
	}
	return Generic(action)
}

// Generic is the fallback failure message.
func Generic(action Action) string {
	return string(action) + " failed. Please try again."
}

// Success reports a completed action.
func Success(action Action) Toast {
	return Toast{Kind: KindSuccess, Message: string(action) + " successful."}
}

// Info wraps a custom success message.
func Info(message string) Toast {
	return Toast{Kind: KindSuccess, Message: message}
}
