package storage

import "context"

// AttachmentStorage keeps the files attached to issue reports.
type AttachmentStorage interface {
	// UploadFile uploads a local file into destFolder and returns its permanent identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
}

// AttachmentFolder is where report attachments are uploaded.
const AttachmentFolder = "reports/attachments"
