package dto

import (
	"time"

	"civicmatch_backend/internal/models"
)

// ReviewDecision is the reviewer's verdict on a pending document.
// Reason only applies to reject and may be empty.
type ReviewDecision struct {
	Action string `json:"action" validate:"required,oneof=verify reject"`
	Reason string `json:"reason" validate:"max=2000"`
}

type DocumentResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Type     string `json:"type"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type"`

	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	VerifiedBy      *string    `json:"verified_by,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AdminDocumentResponse includes owner identity for the review queue.
type AdminDocumentResponse struct {
	DocumentResponse
	OwnerEmail    string `json:"owner_email,omitempty"`
	OwnerFullName string `json:"owner_full_name,omitempty"`
}

func NewDocumentResponse(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:              doc.ID,
		UserID:          doc.UserID,
		Type:            string(doc.Type),
		FileName:        doc.FileName,
		FileSize:        doc.FileSize,
		MimeType:        doc.MimeType,
		Status:          string(doc.Status),
		RejectionReason: doc.RejectionReason,
		VerifiedBy:      doc.VerifiedBy,
		VerifiedAt:      doc.VerifiedAt,
		CreatedAt:       doc.CreatedAt,
	}
}

func NewDocumentResponseList(docs []models.Document) []*DocumentResponse {
	out := make([]*DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, NewDocumentResponse(&docs[i]))
	}
	return out
}

func NewAdminDocumentResponse(doc *models.Document) *AdminDocumentResponse {
	resp := &AdminDocumentResponse{DocumentResponse: *NewDocumentResponse(doc)}
	if doc.Owner != nil {
		resp.OwnerEmail = doc.Owner.Email
		resp.OwnerFullName = doc.Owner.FullName
	}
	return resp
}

func NewAdminDocumentResponseList(docs []models.Document) []*AdminDocumentResponse {
	out := make([]*AdminDocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, NewAdminDocumentResponse(&docs[i]))
	}
	return out
}
