// Package service seeds the indicator dataset into the configured backends
package service

import (
	"context"
	"time"

	"econlens/internal/core/indicators"
	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/logger"
	"econlens/internal/services/seed/domain"
)

// Service writes one dataset into every target repo
type Service struct {
	pg domain.StorageRepo
	ch domain.StorageRepo
}

// New wires the target repos, either may be nil when its backend is not seeded
func New(pg, ch domain.StorageRepo) *Service {
	return &Service{pg: pg, ch: ch}
}

// Seed writes ds to postgres then clickhouse
func (s *Service) Seed(ctx context.Context, ds *indicators.Dataset) (domain.Report, error) {
	if ds == nil {
		return domain.Report{}, perr.InvalidArgf("nothing to seed")
	}
	if s.pg == nil && s.ch == nil {
		return domain.Report{}, perr.WithField(perr.InvalidArgf("no seed target configured"), "targets")
	}
	log := logger.C(ctx)
	rep := domain.Report{Records: ds.Len()}

	run := func(target string, r domain.StorageRepo, into *int) error {
		if r == nil {
			return nil
		}
		start := time.Now()
		n, err := r.Write(ctx, ds)
		if err != nil {
			log.Error().Err(err).Str("target", target).Msg("seed failed")
			return perr.WithOp(err, "seed."+target)
		}
		*into = n
		log.Info().Str("target", target).Int("rows", n).Dur("elapsed", time.Since(start)).Msg("seeded")
		return nil
	}
	if err := run(domain.TargetPG, s.pg, &rep.PGRows); err != nil {
		return rep, err
	}
	if err := run(domain.TargetCH, s.ch, &rep.CHRows); err != nil {
		return rep, err
	}
	return rep, nil
}
