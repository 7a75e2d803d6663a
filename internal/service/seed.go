package service

import "context"

// Seed populates the catalog with the sample dataset. It is idempotent: when
// the story or thread index list already exists, nothing is written and Seed
// reports false. The existence check and all writes run in one store
// transaction, so concurrent first-time clients cannot double-seed.
func (s *CatalogService) Seed(ctx context.Context) (bool, error) {
	guards, records := seedRecords()

	// Read-only fast path. SetAllIfAbsent re-checks the guards inside its
	// write transaction, so a race here cannot double-seed.
	for _, guard := range guards {
		exists, err := s.store.Exists(ctx, guard)
		if err != nil {
			return false, err
		}
		if exists {
			s.logger.Debug("catalog already seeded, skipping")
			return false, nil
		}
	}

	seeded, err := s.store.SetAllIfAbsent(ctx, guards, records)
	if err != nil {
		return false, err
	}

	if seeded {
		s.logger.Info("catalog seeded", "records", len(records))
	} else {
		s.logger.Debug("catalog already seeded, skipping")
	}

	return seeded, nil
}
