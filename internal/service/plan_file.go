// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nirco-cloud/tripsync/models"
)

// PlanFileVersion is the envelope version written into exported plan files.
const PlanFileVersion = "2.0.0"

// planFileEnvelope is the export wire format. Import additionally accepts a
// bare entry array and legacy envelopes using the "plan" key.
type planFileEnvelope struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exportedAt"`
	Entries    []models.PlanEntry `json:"entries"`
}

func (p *planService) Export(ctx context.Context) ([]byte, error) {
	entries, err := p.plan.ReadAllLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("read plan entries: %w", err)
	}

	data, err := json.MarshalIndent(planFileEnvelope{
		Version:    PlanFileVersion,
		ExportedAt: time.Now().UTC(),
		Entries:    entries,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode plan file: %w", err)
	}

	return data, nil
}

func (p *planService) Import(ctx context.Context, data []byte) (int, error) {
	entries, err := ParsePlanFile(data)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if _, err = p.plan.Save(ctx, entry); err != nil {
			return count, fmt.Errorf("import plan entry %q: %w", entry.ID, err)
		}
		count++
	}

	p.logger.Info().
		Str("func", "planService.Import").
		Int("entries", count).
		Msg("plan file imported")

	return count, nil
}

// ParsePlanFile decodes a plan file payload into normalized entries. It
// accepts the current envelope ({"entries": [...]}), the legacy envelope
// ({"plan": [...]}) and a bare entry array. Records without an id, a
// positive day or a name are skipped; a payload yielding no valid entries is
// rejected.
func ParsePlanFile(data []byte) ([]models.PlanEntry, error) {
	raw, err := extractPlanRecords(data)
	if err != nil {
		return nil, err
	}

	valid := make([]models.PlanEntry, 0, len(raw))
	for _, entry := range raw {
		if entry.ID == "" || entry.Day < 1 || entry.Name == "" {
			continue
		}
		valid = append(valid, models.Normalize(entry))
	}

	if len(valid) == 0 {
		return nil, ErrNoEntriesFound
	}

	return valid, nil
}

func extractPlanRecords(data []byte) ([]models.PlanEntry, error) {
	var bare []models.PlanEntry
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var envelope struct {
		Entries []models.PlanEntry `json:"entries"`
		Plan    []models.PlanEntry `json:"plan"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlanFile, err)
	}

	if envelope.Entries != nil {
		return envelope.Entries, nil
	}
	if envelope.Plan != nil {
		return envelope.Plan, nil
	}

	return nil, ErrNoEntriesFound
}
