package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// Document types accepted by the comment recorder.
const (
	DocTypeShipmentNote    = "Shipment Note"
	DocTypeCarrierShipment = "Carrier Shipment"
)

// CommentRecorder appends audit comments to a document's trail.
type CommentRecorder interface {
	// RecordComment appends a comment with the given text to the document.
	RecordComment(ctx context.Context, docType string, docID kernel.UUID, text string) error
}
