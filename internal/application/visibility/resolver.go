// Package visibility computes which provider users, contacts, and client
// domains a logged-in user may query. Four grant sources overlap: personal
// ownership, supervisor continuity, delegated aliases, and collaborator
// mappings. Absence from all four means no access.
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

// Caller identifies the logged-in user the resolution runs for.
type Caller struct {
	ID   uint
	Role user.Role
}

// Result is the resolved visibility for one request. Queries against
// contacts or client domains outside these sets must be rejected.
type Result struct {
	ProviderUserIDs *setutil.UintSet
	ClientDomainIDs *setutil.UintSet
}

// VisibleToUser reports whether the provider user is in the resolved set.
func (r *Result) VisibleToUser(providerUserID uint) bool {
	return r.ProviderUserIDs.Has(providerUserID)
}

// VisibleDomain reports whether the client domain is in the resolved set.
func (r *Result) VisibleDomain(clientDomainID uint) bool {
	return r.ClientDomainIDs.Has(clientDomainID)
}

// Resolver merges the four grant sources into an authoritative ID set.
type Resolver struct {
	supervisors    user.SupervisorMappingRepository
	aliases        user.AliasMappingRepository
	collaborators  user.CollaboratorMappingRepository
	domainMappings contact.DomainMappingRepository
	logger         logger.Interface
}

func NewResolver(
	supervisors user.SupervisorMappingRepository,
	aliases user.AliasMappingRepository,
	collaborators user.CollaboratorMappingRepository,
	domainMappings contact.DomainMappingRepository,
	logger logger.Interface,
) *Resolver {
	return &Resolver{
		supervisors:    supervisors,
		aliases:        aliases,
		collaborators:  collaborators,
		domainMappings: domainMappings,
		logger:         logger,
	}
}

// Resolve computes the full visibility result for the caller and the
// request's selectors. All resolution is synchronous read-only querying;
// database errors propagate unchanged.
func (r *Resolver) Resolve(ctx context.Context, schema string, caller Caller, params SearchUserParams) (*Result, error) {
	userIDs, err := r.ResolveProviderUserIDs(ctx, schema, caller, params)
	if err != nil {
		return nil, err
	}

	domainIDs, err := r.domainMappings.ListDomainIDsByUserIDs(ctx, schema, userIDs.ToSlice())
	if err != nil {
		return nil, err
	}

	result := &Result{
		ProviderUserIDs: userIDs,
		ClientDomainIDs: setutil.FromSlice(domainIDs),
	}

	r.logger.Debugw("visibility resolved",
		"schema", schema,
		"caller_id", caller.ID,
		"provider_users", userIDs.Len(),
		"client_domains", result.ClientDomainIDs.Len(),
	)

	return result, nil
}

// ResolveProviderUserIDs merges the four grant sources into the set of
// provider users whose data the caller may see.
func (r *Resolver) ResolveProviderUserIDs(ctx context.Context, schema string, caller Caller, params SearchUserParams) (*setutil.UintSet, error) {
	now := biztime.NowUTC()
	ids := setutil.NewUintSet()

	// Personal/default set. A supervisor's default view includes direct
	// reports; deeper chains are not traversed.
	if !params.HasAny() || params.Me.IsSet() {
		ids.Add(caller.ID)
		if caller.Role == user.RoleSupervisor {
			subs, err := r.supervisors.ListSubordinateIDs(ctx, schema, caller.ID)
			if err != nil {
				return nil, err
			}
			ids.AddAll(subs)
		}
	}

	if params.Subordinates.IsSet() {
		subs, err := r.supervisors.ListSubordinateIDs(ctx, schema, caller.ID)
		if err != nil {
			return nil, err
		}
		ids.AddAll(params.Subordinates.Filter(subs))
	}

	if params.Collaborators.IsSet() {
		peers, err := r.collaborators.ListActivePeerIDs(ctx, schema, caller.ID, now)
		if err != nil {
			return nil, err
		}
		ids.AddAll(params.Collaborators.Filter(peers))
	}

	if params.Aliases.IsSet() {
		mappings, err := r.aliases.ListActiveForUser(ctx, schema, caller.ID, now)
		if err != nil {
			return nil, err
		}
		aliasIDs := make([]uint, 0, len(mappings))
		for _, m := range mappings {
			aliasIDs = append(aliasIDs, m.AliasUserID)
		}
		ids.AddAll(params.Aliases.Filter(aliasIDs))
	}

	return ids, nil
}

// AuthorizeDomain rejects access to a client domain outside the resolved set.
func (r *Resolver) AuthorizeDomain(result *Result, clientDomainID uint) error {
	if !result.VisibleDomain(clientDomainID) {
		return errors.NewForbiddenError("access to client domain denied")
	}
	return nil
}
