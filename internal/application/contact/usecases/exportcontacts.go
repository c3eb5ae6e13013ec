package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/visibility"
	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// exportBatchSize pages through the repository during export.
const exportBatchSize = 500

var exportHeader = []string{"email", "first_name", "last_name", "title", "phone", "client_domain_id", "created_at"}

type ExportContactsQuery struct {
	Schema          string
	Caller          visibility.Caller
	Params          visibility.SearchUserParams
	Search          string
	ClientDomainIDs visibility.Selector
}

type ExportContactsResult struct {
	Filename string
	CSV      []byte
	Rows     int
}

type ExportContactsUseCase struct {
	resolver    *visibility.Resolver
	contactRepo contact.Repository
	logger      logger.Interface
}

func NewExportContactsUseCase(
	resolver *visibility.Resolver,
	contactRepo contact.Repository,
	logger logger.Interface,
) *ExportContactsUseCase {
	return &ExportContactsUseCase{
		resolver:    resolver,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Execute streams every visible contact matching the filters into a CSV
// document. The same visibility rules as listing apply; the export can never
// contain a contact the caller could not list.
func (uc *ExportContactsUseCase) Execute(ctx context.Context, query ExportContactsQuery) (*ExportContactsResult, error) {
	resolved, err := uc.resolver.Resolve(ctx, query.Schema, query.Caller, query.Params)
	if err != nil {
		return nil, err
	}

	domainIDs := query.ClientDomainIDs.Filter(resolved.ClientDomainIDs.ToSlice())

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	rows := 0
	if len(domainIDs) > 0 {
		for offset := 0; ; offset += exportBatchSize {
			contacts, _, err := uc.contactRepo.List(ctx, query.Schema, contact.Filter{
				ClientDomainIDs: domainIDs,
				Search:          query.Search,
				Offset:          offset,
				Limit:           exportBatchSize,
			})
			if err != nil {
				uc.logger.Errorw("failed to page contacts for export", "error", err, "schema", query.Schema)
				return nil, fmt.Errorf("failed to page contacts for export: %w", err)
			}
			for _, c := range contacts {
				record := []string{
					c.Email,
					c.FirstName,
					c.LastName,
					c.Title,
					c.Phone,
					fmt.Sprintf("%d", c.ClientDomainID),
					biztime.FormatDate(c.CreatedAt),
				}
				if err := w.Write(record); err != nil {
					return nil, fmt.Errorf("failed to write export row: %w", err)
				}
				rows++
			}
			if len(contacts) < exportBatchSize {
				break
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to finalize export: %w", err)
	}

	filename := fmt.Sprintf("contacts-%s.csv", biztime.FormatDate(biztime.NowUTC()))
	uc.logger.Infow("contact export generated", "schema", query.Schema, "rows", rows)
	return &ExportContactsResult{Filename: filename, CSV: buf.Bytes(), Rows: rows}, nil
}
