package models

type UserRole string
type EmploymentStatus string
type ResourceType string
type DocumentType string
type DocumentStatus string
type ActivityType string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleUser     UserRole = "user"
	UserRoleVerifier UserRole = "verifier"

	EmploymentStatusEmployed   EmploymentStatus = "employed"
	EmploymentStatusUnemployed EmploymentStatus = "unemployed"
	EmploymentStatusSeeking    EmploymentStatus = "seeking"
	EmploymentStatusStudent    EmploymentStatus = "student"

	ResourceTypeJob              ResourceType = "job"
	ResourceTypeCourse           ResourceType = "course"
	ResourceTypeScholarship      ResourceType = "scholarship"
	ResourceTypeWorkshop         ResourceType = "workshop"
	ResourceTypeGovernmentScheme ResourceType = "government_scheme"
	ResourceTypeOther            ResourceType = "other"

	DocumentTypeIDProof                DocumentType = "id_proof"
	DocumentTypeAddressProof           DocumentType = "address_proof"
	DocumentTypeEducationalCertificate DocumentType = "educational_certificate"
	DocumentTypeMarksheet              DocumentType = "marksheet"
	DocumentTypeOther                  DocumentType = "other"

	// DocumentStatusPending is the initial state. Verified and rejected are
	// both re-enterable: a reviewer decision always overrides the current
	// state, whatever it is.
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"

	ActivityTypeLogin            ActivityType = "login"
	ActivityTypeDocumentUpload   ActivityType = "document_upload"
	ActivityTypeDocumentVerified ActivityType = "document_verified"
	ActivityTypeDocumentRejected ActivityType = "document_rejected"
	ActivityTypeResourceView     ActivityType = "resource_view"
)

// ElevatedRoles lists roles allowed to adjudicate document reviews.
var ElevatedRoles = []UserRole{UserRoleAdmin, UserRoleVerifier}

// IsElevated reports whether the role carries reviewer privileges.
func (r UserRole) IsElevated() bool {
	for _, role := range ElevatedRoles {
		if r == role {
			return true
		}
	}
	return false
}
