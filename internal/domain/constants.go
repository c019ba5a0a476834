package domain

const (
	RoleAdmin   = "admin"
	RoleNGO     = "ngo"
	RoleStudent = "student"
)

// Roles is the closed set of user roles.
var Roles = []string{RoleAdmin, RoleNGO, RoleStudent}

const DefaultLanguage = "en"

// Error codes returned in the {error, code} envelope.
const (
	CodeServerError     = "SERVER_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidBody     = "INVALID_BODY"
	CodeInvalidID       = "INVALID_ID"
	CodeDuplicateRecord = "DUPLICATE_RECORD"
	CodeReferenced      = "REFERENCED_RECORD"
	CodeRateLimited     = "RATE_LIMITED"
	CodeUnavailable     = "SERVICE_UNAVAILABLE"

	CodeMissingUserID       = "MISSING_USER_ID"
	CodeInvalidUserID       = "INVALID_USER_ID"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeMissingNGOName      = "MISSING_NGO_NAME"
	CodeInvalidNGOName      = "INVALID_NGO_NAME"
	CodeMissingContactEmail = "MISSING_CONTACT_EMAIL"
	CodeInvalidContactEmail = "INVALID_CONTACT_EMAIL"
	CodeInvalidEmailFormat  = "INVALID_EMAIL_FORMAT"
	CodeInvalidApprovedNGO  = "INVALID_APPROVED_VALUE"

	CodeMissingNGOID       = "MISSING_NGO_ID"
	CodeInvalidNGOID       = "INVALID_NGO_ID"
	CodeNGONotFound        = "NGO_NOT_FOUND"
	CodeMissingTitle       = "MISSING_TITLE"
	CodeInvalidTitle       = "INVALID_TITLE"
	CodeMissingEventDate   = "MISSING_EVENT_DATE"
	CodeInvalidEventDate   = "INVALID_EVENT_DATE"
	CodePastEventDate      = "PAST_EVENT_DATE"
	CodeMissingLocation    = "MISSING_LOCATION"
	CodeInvalidLocation    = "INVALID_LOCATION"
	CodeMissingCategory    = "MISSING_CATEGORY"
	CodeInvalidCategory    = "INVALID_CATEGORY"
	CodeInvalidApprovedEvt = "INVALID_APPROVED"

	CodeMissingSessionID       = "MISSING_SESSION_ID"
	CodeMissingMessage         = "MISSING_MESSAGE"
	CodeMissingResponse        = "MISSING_RESPONSE"
	CodeMissingDeleteParameter = "MISSING_DELETE_PARAMETER"

	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"

	CodeMissingFile     = "MISSING_FILE"
	CodeInvalidKind     = "INVALID_UPLOAD_KIND"
	CodeUploadsDisabled = "UPLOADS_DISABLED"
	CodeUploadFailed    = "UPLOAD_FAILED"
)
