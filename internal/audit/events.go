package audit

// Kind tags an audit event. The set is fixed; the log viewer and any
// downstream tooling key off these strings, so they never change once shipped.
type Kind string

const (
	KindSignupValidationError       Kind = "SIGNUP_VALIDATION_ERROR"
	KindUserSignupSuccess           Kind = "USER_SIGNUP_SUCCESS"
	KindUserSignupError             Kind = "USER_SIGNUP_ERROR"
	KindLoginAttemptUnknownUser     Kind = "LOGIN_ATTEMPT_UNKNOWN_USER"
	KindLoginAttemptInvalidPassword Kind = "LOGIN_ATTEMPT_INVALID_PASSWORD"
	KindUserLoginSuccess            Kind = "USER_LOGIN_SUCCESS"
	KindLoginError                  Kind = "LOGIN_ERROR"
	KindLogoutError                 Kind = "LOGOUT_ERROR"
	KindUserLogoutSuccess           Kind = "USER_LOGOUT_SUCCESS"
	KindUnauthorizedAccessAttempt   Kind = "UNAUTHORIZED_ACCESS_ATTEMPT"
	KindUserNotFound                Kind = "USER_NOT_FOUND"
	KindDashboardAccess             Kind = "DASHBOARD_ACCESS"
	KindDashboardError              Kind = "DASHBOARD_ERROR"

	KindHealthcareInfoCreated            Kind = "HEALTHCARE_INFO_CREATED"
	KindHealthcareInfoCreateError        Kind = "HEALTHCARE_INFO_CREATE_ERROR"
	KindHealthcareInfoRead               Kind = "HEALTHCARE_INFO_READ"
	KindHealthcareInfoReadError          Kind = "HEALTHCARE_INFO_READ_ERROR"
	KindHealthcareInfoUpdated            Kind = "HEALTHCARE_INFO_UPDATED"
	KindHealthcareInfoUpdateUnauthorized Kind = "HEALTHCARE_INFO_UPDATE_UNAUTHORIZED"
	KindHealthcareInfoUpdateError        Kind = "HEALTHCARE_INFO_UPDATE_ERROR"
	KindHealthcareInfoDeleted            Kind = "HEALTHCARE_INFO_DELETED"
	KindHealthcareInfoDeleteUnauthorized Kind = "HEALTHCARE_INFO_DELETE_UNAUTHORIZED"
	KindHealthcareInfoDeleteError        Kind = "HEALTHCARE_INFO_DELETE_ERROR"

	KindLogViewAccess Kind = "LOG_VIEW_ACCESS"
	KindLogViewError  Kind = "LOG_VIEW_ERROR"
)

// Event is a kind plus its detail payload. Each kind carries a fixed detail
// key set, so events are built through the constructors below rather than by
// assembling maps at call sites.
type Event struct {
	Kind    Kind
	Details map[string]any
}

func SignupValidationError(reason string) Event {
	return Event{KindSignupValidationError, map[string]any{"error": reason}}
}

func UserSignupSuccess(userID uint, email string) Event {
	return Event{KindUserSignupSuccess, map[string]any{"userId": userID, "email": email}}
}

func UserSignupError(reason, email string) Event {
	return Event{KindUserSignupError, map[string]any{"error": reason, "email": email}}
}

func LoginAttemptUnknownUser(email string) Event {
	return Event{KindLoginAttemptUnknownUser, map[string]any{"email": email}}
}

func LoginAttemptInvalidPassword(userID uint, email string) Event {
	return Event{KindLoginAttemptInvalidPassword, map[string]any{"userId": userID, "email": email}}
}

func UserLoginSuccess(userID uint, email string) Event {
	return Event{KindUserLoginSuccess, map[string]any{"userId": userID, "email": email}}
}

func LoginError(reason, email string) Event {
	return Event{KindLoginError, map[string]any{"error": reason, "email": email}}
}

func LogoutError(reason string, userID uint) Event {
	return Event{KindLogoutError, map[string]any{"error": reason, "userId": userID}}
}

func UserLogoutSuccess(userID uint) Event {
	return Event{KindUserLogoutSuccess, map[string]any{"userId": userID}}
}

func UnauthorizedAccessAttempt(path, method string) Event {
	return Event{KindUnauthorizedAccessAttempt, map[string]any{"path": path, "method": method}}
}

func UserNotFound(userID uint) Event {
	return Event{KindUserNotFound, map[string]any{"userId": userID}}
}

func DashboardAccess(userID uint) Event {
	return Event{KindDashboardAccess, map[string]any{"userId": userID}}
}

func DashboardError(reason string, userID uint) Event {
	return Event{KindDashboardError, map[string]any{"error": reason, "userId": userID}}
}

func HealthcareInfoCreated(userID, infoID uint) Event {
	return Event{KindHealthcareInfoCreated, map[string]any{"userId": userID, "healthcareInfoId": infoID}}
}

func HealthcareInfoCreateError(reason string, userID uint) Event {
	return Event{KindHealthcareInfoCreateError, map[string]any{"error": reason, "userId": userID}}
}

func HealthcareInfoRead(userID uint) Event {
	return Event{KindHealthcareInfoRead, map[string]any{"userId": userID}}
}

func HealthcareInfoReadError(reason string, userID uint) Event {
	return Event{KindHealthcareInfoReadError, map[string]any{"error": reason, "userId": userID}}
}

func HealthcareInfoUpdated(userID uint, infoID string) Event {
	return Event{KindHealthcareInfoUpdated, map[string]any{"userId": userID, "healthcareInfoId": infoID}}
}

func HealthcareInfoUpdateUnauthorized(userID uint, infoID string) Event {
	return Event{KindHealthcareInfoUpdateUnauthorized, map[string]any{"userId": userID, "healthcareInfoId": infoID}}
}

func HealthcareInfoUpdateError(reason string, userID uint) Event {
	return Event{KindHealthcareInfoUpdateError, map[string]any{"error": reason, "userId": userID}}
}

func HealthcareInfoDeleted(userID uint, infoID string) Event {
	return Event{KindHealthcareInfoDeleted, map[string]any{"userId": userID, "healthcareInfoId": infoID}}
}

func HealthcareInfoDeleteUnauthorized(userID uint, infoID string) Event {
	return Event{KindHealthcareInfoDeleteUnauthorized, map[string]any{"userId": userID, "healthcareInfoId": infoID}}
}

func HealthcareInfoDeleteError(reason string, userID uint) Event {
	return Event{KindHealthcareInfoDeleteError, map[string]any{"error": reason, "userId": userID}}
}

func LogViewAccess(userID uint) Event {
	return Event{KindLogViewAccess, map[string]any{"userId": userID}}
}

func LogViewError(reason string, userID uint) Event {
	return Event{KindLogViewError, map[string]any{"error": reason, "userId": userID}}
}
