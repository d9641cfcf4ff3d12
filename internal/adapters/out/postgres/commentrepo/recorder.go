// Package commentrepo persists audit trail comments for shipping documents.
package commentrepo

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentDTO represents one audit trail entry attached to a document.
type CommentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocType   string    `gorm:"type:varchar(64);index:idx_comments_doc"`
	DocID     uuid.UUID `gorm:"type:uuid;index:idx_comments_doc"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName specifies the database table name for comment entities.
func (CommentDTO) TableName() string {
	return "comments"
}

// GormCommentRecorder implements CommentRecorder using GORM.
// When constructed from a unit of work it writes within that transaction,
// so audit entries never outlive a rolled back business operation.
type GormCommentRecorder struct {
	db *gorm.DB
}

// NewGormCommentRecorder creates a new GORM comment recorder.
func NewGormCommentRecorder(db *gorm.DB) *GormCommentRecorder {
	return &GormCommentRecorder{db: db}
}

// RecordComment appends a comment to the document's audit trail.
func (r *GormCommentRecorder) RecordComment(
	ctx context.Context,
	docType string,
	docID kernel.UUID,
	text string,
) error {
	dto := CommentDTO{
		ID:        uuid.New(),
		DocType:   docType,
		DocID:     docID.Bytes(),
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
