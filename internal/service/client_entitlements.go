package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-vault/models"
)

// GetEntitlementState implements [PasswordManager]. Entitlements, vault
// metadata and profiles are fetched concurrently; the first failure is
// returned.
func (m *passwordManager) GetEntitlementState(ctx context.Context) ([]models.EntitlementState, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	var (
		entitlements []models.Entitlement
		vaults       []models.VaultMetadata
		profiles     []models.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entitlements, err = m.clients.Entitlements.GetEntitlements(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		vaults, err = m.clients.Vaults.ListVaultsMetadataOnly(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		profiles, err = m.clients.Profiles.ListProfiles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, mapRemoteError(err)
	}

	return entitlementStates(entitlements, vaults, profiles), nil
}

// entitlementStates counts the vaults of every profile against the
// vaults-per-profile limit. Without that entitlement there is no state.
func entitlementStates(entitlements []models.Entitlement, vaults []models.VaultMetadata, profiles []models.Profile) []models.EntitlementState {
	limit, ok := findEntitlement(entitlements, models.EntitlementMaxVaultsPerProfile)
	if !ok {
		return []models.EntitlementState{}
	}

	counts := make(map[string]int)
	for _, v := range vaults {
		if profileID, ok := v.ProfileID(); ok {
			counts[profileID]++
		}
	}

	states := make([]models.EntitlementState, 0, len(profiles))
	for _, p := range profiles {
		if p.ID == "" {
			continue
		}
		states = append(states, models.EntitlementState{
			Name:      models.EntitlementMaxVaultsPerProfile,
			ProfileID: p.ID,
			Limit:     limit.Value,
			Value:     counts[p.ID],
		})
	}
	return states
}

func findEntitlement(entitlements []models.Entitlement, name string) (models.Entitlement, bool) {
	for _, e := range entitlements {
		if e.Name == name {
			return e, true
		}
	}
	return models.Entitlement{}, false
}
