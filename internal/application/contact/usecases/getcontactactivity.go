package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/contact/dto"
	"github.com/recovvo-inc/recovvo/internal/application/visibility"
	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type GetContactActivityQuery struct {
	Schema     string
	Caller     visibility.Caller
	ContactID  uint
	Window     visibility.Window
	Pagination utils.Pagination
}

type GetContactActivityResult struct {
	Messages   []*dto.EmailMessageDTO
	Total      int64
	AccessType visibility.AccessType
}

type GetContactActivityUseCase struct {
	classifier  *visibility.Classifier
	contactRepo contact.Repository
	messageRepo contact.EmailMessageRepository
	settingRepo tenant.OrgSettingRepository
	logger      logger.Interface
}

func NewGetContactActivityUseCase(
	classifier *visibility.Classifier,
	contactRepo contact.Repository,
	messageRepo contact.EmailMessageRepository,
	settingRepo tenant.OrgSettingRepository,
	logger logger.Interface,
) *GetContactActivityUseCase {
	return &GetContactActivityUseCase{
		classifier:  classifier,
		contactRepo: contactRepo,
		messageRepo: messageRepo,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Execute returns a contact's email activity through the caller's strongest
// grant. Each visible provider user's messages are bounded by the
// intersection of that grant's historical window, the organization-wide
// access window, and the request's emailsFrom/emailsUpto bounds; request
// bounds can only narrow, never widen.
func (uc *GetContactActivityUseCase) Execute(ctx context.Context, query GetContactActivityQuery) (*GetContactActivityResult, error) {
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

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	messages, total, err := uc.messageRepo.ListByContact(
		ctx, query.Schema, c.ID,
		access.MessageScopes(),
		p.Offset(), p.PageSize,
	)
	if err != nil {
		uc.logger.Errorw("failed to list contact activity", "error", err, "contact_id", c.ID)
		return nil, fmt.Errorf("failed to list contact activity: %w", err)
	}

	return &GetContactActivityResult{
		Messages:   dto.ToEmailMessageDTOs(messages),
		Total:      total,
		AccessType: access.Type,
	}, nil
}
