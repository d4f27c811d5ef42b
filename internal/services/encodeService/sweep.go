package encodeservice

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// SweepRequest describes one batch run.
type SweepRequest struct {
	// Encodings are evaluated in order, each against every input.
	Encodings []string
	Sources   []Source
	// Target enables lookup mode when non-empty.
	Target string
}

// SweepResult holds the de-duplicated outputs and, in lookup mode, the
// encodings that reproduced the target.
type SweepResult struct {
	// Encoded lists unique outputs in first-seen order.
	Encoded []string
	// Matches lists matching encodings in first-seen order.
	Matches []string

	Pairs       int
	Unavailable int
	Violations  int
}

// Sweep encodes every input of every source under every encoding. Encodings
// form the outer loop, sources and their lines the inner one, so the order of
// Encoded is reproducible.
//
// Per-pair failures never stop the sweep; only a source read error does.
func (s *EncodeService) Sweep(req SweepRequest) (*SweepResult, error) {
	res := &SweepResult{}
	seen := make(map[string]struct{})
	matched := make(map[string]struct{})
	lookup := req.Target != ""

	for _, name := range req.Encodings {
		for _, src := range req.Sources {
			err := src.Each(func(input string) {
				res.Pairs++

				out, err := s.Encode(input, name)
				if err != nil {
					s.recordFailure(res, name, err)
					return
				}
				if out == "" {
					return
				}

				if _, ok := seen[out]; !ok {
					seen[out] = struct{}{}
					res.Encoded = append(res.Encoded, out)
				}
				if lookup && out == req.Target {
					if _, ok := matched[name]; !ok {
						matched[name] = struct{}{}
						res.Matches = append(res.Matches, name)
					}
				}
			})
			if err != nil {
				return nil, fmt.Errorf("sweep %s: %w", src.Name(), err)
			}
		}
	}

	s.log.WithFields(logrus.Fields{
		"pairs":       res.Pairs,
		"unique":      len(res.Encoded),
		"unavailable": res.Unavailable,
		"violations":  res.Violations,
		"matches":     len(res.Matches),
	}).Debug("sweep finished")

	return res, nil
}

func (s *EncodeService) recordFailure(res *SweepResult, name string, err error) {
	res.Unavailable++

	var constraint *ConstraintError
	switch {
	case errors.Is(err, ErrUnresolvableEncoding):
		s.log.WithField("encoding", name).Debug("skipping unresolvable encoding")
	case errors.As(err, &constraint):
		res.Violations++
		s.log.WithField("encoding", constraint.Encoding).WithError(constraint.Err).Warn("failed encoding")
	default:
		s.log.WithField("encoding", name).WithError(err).Warn("failed encoding")
	}
}
