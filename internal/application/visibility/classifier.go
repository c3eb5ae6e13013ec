package visibility

import (
	"context"

	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils/setutil"
)

// AccessType names the grant source through which a caller reaches a
// contact. When several sources apply the strongest one wins.
type AccessType string

const (
	AccessDomainMapping AccessType = "domain_mapping"
	AccessSupervisor    AccessType = "supervisor"
	AccessAlias         AccessType = "alias"
	AccessNone          AccessType = "none"
)

// UserScope binds one visible provider user to the effective content window
// of the grant that exposed them. Each grant keeps its own window; two alias
// grants to the same domain never widen each other.
type UserScope struct {
	ProviderUserID uint
	Window         Window
}

// ContactAccess is the classified access path to one contact: which grant
// source applies and, per visible provider user, the clipped content window.
type ContactAccess struct {
	Type   AccessType
	Scopes []UserScope
}

// ProviderUserIDs returns the visible provider users in scope order.
func (a *ContactAccess) ProviderUserIDs() []uint {
	ids := make([]uint, len(a.Scopes))
	for i, s := range a.Scopes {
		ids[i] = s.ProviderUserID
	}
	return ids
}

// MessageScopes converts the access scopes into repository message filters.
func (a *ContactAccess) MessageScopes() []contact.MessageScope {
	scopes := make([]contact.MessageScope, len(a.Scopes))
	for i, s := range a.Scopes {
		scopes[i] = contact.MessageScope{
			ProviderUserID: s.ProviderUserID,
			From:           s.Window.From,
			To:             s.Window.To,
		}
	}
	return scopes
}

// Classifier determines how, and with what window, a caller may read a
// contact's email activity.
type Classifier struct {
	supervisors    user.SupervisorMappingRepository
	aliases        user.AliasMappingRepository
	domainMappings contact.DomainMappingRepository
	logger         logger.Interface
}

func NewClassifier(
	supervisors user.SupervisorMappingRepository,
	aliases user.AliasMappingRepository,
	domainMappings contact.DomainMappingRepository,
	logger logger.Interface,
) *Classifier {
	return &Classifier{
		supervisors:    supervisors,
		aliases:        aliases,
		domainMappings: domainMappings,
		logger:         logger,
	}
}

// ClassifyContactAccess resolves the caller's access path to the client
// domain a contact belongs to. Source priority is domain mapping, then
// supervisor, then alias. Direct and supervisor access inherit only the
// org-wide and request windows; alias access additionally clips to the
// grant's historical window. No matching source yields a Forbidden error.
func (c *Classifier) ClassifyContactAccess(
	ctx context.Context,
	schema string,
	caller Caller,
	clientDomainID uint,
	orgWindow, requestWindow Window,
) (*ContactAccess, error) {
	mappedIDs, err := c.domainMappings.ListUserIDsByDomainID(ctx, schema, clientDomainID)
	if err != nil {
		return nil, err
	}
	mapped := setutil.FromSlice(mappedIDs)

	if mapped.Has(caller.ID) {
		return &ContactAccess{
			Type:   AccessDomainMapping,
			Scopes: []UserScope{{ProviderUserID: caller.ID, Window: Clip(Window{}, orgWindow, requestWindow)}},
		}, nil
	}

	if caller.Role == user.RoleSupervisor {
		subs, err := c.supervisors.ListSubordinateIDs(ctx, schema, caller.ID)
		if err != nil {
			return nil, err
		}
		visible := mapped.Intersect(subs).ToSlice()
		if len(visible) > 0 {
			w := Clip(Window{}, orgWindow, requestWindow)
			scopes := make([]UserScope, len(visible))
			for i, id := range visible {
				scopes[i] = UserScope{ProviderUserID: id, Window: w}
			}
			return &ContactAccess{Type: AccessSupervisor, Scopes: scopes}, nil
		}
	}

	now := biztime.NowUTC()
	grants, err := c.aliases.ListActiveForUser(ctx, schema, caller.ID, now)
	if err != nil {
		return nil, err
	}
	access := &ContactAccess{Type: AccessAlias}
	for _, g := range grants {
		if !mapped.Has(g.AliasUserID) {
			continue
		}
		from, to := g.HistoricalWindow()
		access.Scopes = append(access.Scopes, UserScope{
			ProviderUserID: g.AliasUserID,
			// Each grant's historical window bounds only that alias user's
			// messages. Another grant to the same domain must not widen it.
			Window: Clip(Window{From: from, To: to}, orgWindow, requestWindow),
		})
	}
	if len(access.Scopes) > 0 {
		c.logger.Debugw("contact access via alias grant",
			"schema", schema,
			"caller_id", caller.ID,
			"client_domain_id", clientDomainID,
			"alias_users", len(access.Scopes),
		)
		return access, nil
	}

	return nil, errors.NewForbiddenError("access to contact denied")
}
