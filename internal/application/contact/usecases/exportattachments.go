package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/visibility"
	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

var attachmentExportHeader = []string{"message_id", "provider_user_id", "subject", "sent_at"}

type ExportAttachmentsQuery struct {
	Schema    string
	Caller    visibility.Caller
	ContactID uint
	Window    visibility.Window
}

type ExportAttachmentsResult struct {
	Filename string
	CSV      []byte
	Rows     int
}

type ExportAttachmentsUseCase struct {
	classifier  *visibility.Classifier
	contactRepo contact.Repository
	messageRepo contact.EmailMessageRepository
	settingRepo tenant.OrgSettingRepository
	logger      logger.Interface
}

func NewExportAttachmentsUseCase(
	classifier *visibility.Classifier,
	contactRepo contact.Repository,
	messageRepo contact.EmailMessageRepository,
	settingRepo tenant.OrgSettingRepository,
	logger logger.Interface,
) *ExportAttachmentsUseCase {
	return &ExportAttachmentsUseCase{
		classifier:  classifier,
		contactRepo: contactRepo,
		messageRepo: messageRepo,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Execute exports metadata for a contact's messages that carry attachments.
// Access is classified exactly like the activity view; the export can never
// reveal a message the caller could not read there.
func (uc *ExportAttachmentsUseCase) Execute(ctx context.Context, query ExportAttachmentsQuery) (*ExportAttachmentsResult, error) {
	c, err := uc.contactRepo.GetByID(ctx, query.Schema, query.ContactID)
	if err != nil {
		if stderrors.Is(err, contact.ErrContactNotFound) {
			return nil, errors.NewNotFoundError("contact not found")
		}
		uc.logger.Errorw("failed to load contact", "error", err, "contact_id", query.ContactID)
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	if c.IsDeleted {
		return nil, errors.NewNotFoundError("contact not found")
	}

	setting, err := uc.settingRepo.Get(ctx, query.Schema)
	if err != nil {
		uc.logger.Errorw("failed to load org settings", "error", err, "schema", query.Schema)
		return nil, fmt.Errorf("failed to load org settings: %w", err)
	}
	orgWindow := visibility.Window{From: setting.EmailAccessStartDate, To: setting.EmailAccessEndDate}

	access, err := uc.classifier.ClassifyContactAccess(ctx, query.Schema, query.Caller, c.ClientDomainID, orgWindow, query.Window)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(attachmentExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	rows := 0
	for offset := 0; ; offset += exportBatchSize {
		messages, _, err := uc.messageRepo.ListByContact(
			ctx, query.Schema, c.ID,
			access.MessageScopes(),
			offset, exportBatchSize,
		)
		if err != nil {
			uc.logger.Errorw("failed to page messages for export", "error", err, "contact_id", c.ID)
			return nil, fmt.Errorf("failed to page messages for export: %w", err)
		}
		for _, m := range messages {
			if !m.HasAttachment {
				continue
			}
			record := []string{
				fmt.Sprintf("%d", m.ID),
				fmt.Sprintf("%d", m.ProviderUserID),
				m.Subject,
				biztime.FormatDate(m.SentAt),
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write export row: %w", err)
			}
			rows++
		}
		if len(messages) < exportBatchSize {
			break
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to finalize export: %w", err)
	}

	filename := fmt.Sprintf("attachments-contact-%d-%s.csv", c.ID, biztime.FormatDate(biztime.NowUTC()))
	uc.logger.Infow("attachment export generated", "schema", query.Schema, "contact_id", c.ID, "rows", rows)
	return &ExportAttachmentsResult{Filename: filename, CSV: buf.Bytes(), Rows: rows}, nil
}
