package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/tkoivu/country-edit-service/internal/app/country/contracts"
	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
	"github.com/tkoivu/country-edit-service/internal/models/m_country"
	"github.com/tkoivu/country-edit-service/internal/models/m_revision"
	"github.com/tkoivu/country-edit-service/internal/pkg/clock"
	"github.com/tkoivu/country-edit-service/internal/pkg/committer"
	"github.com/tkoivu/country-edit-service/internal/pkg/query"
)

// SpannerStore implements RecordStore and RevisionLog on Cloud Spanner.
// Every save writes the record row and one revision journal row in a
// single commit.
type SpannerStore struct {
	client    *spanner.Client
	committer *committer.Committer
	countries *m_country.Model
	revisions *m_revision.Model
	clock     clock.Clock
}

// NewSpannerStore creates a SpannerStore.
func NewSpannerStore(client *spanner.Client, clk clock.Clock) *SpannerStore {
	return &SpannerStore{
		client:    client,
		committer: committer.NewCommitter(client),
		countries: m_country.NewModel(),
		revisions: m_revision.NewModel(),
		clock:     clk,
	}
}

var (
	_ contracts.RecordStore = (*SpannerStore)(nil)
	_ contracts.RevisionLog = (*SpannerStore)(nil)
)

// Fetch reads the record row by identifier.
func (s *SpannerStore) Fetch(ctx context.Context, uid string) (domain.Record, error) {
	row, err := s.client.Single().ReadRow(ctx, m_country.TableName, spanner.Key{uid}, []string{
		m_country.UID,
		m_country.Name,
		m_country.Code,
		m_country.UpdatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return domain.Record{}, domain.ErrRecordNotFound
		}
		return domain.Record{}, fmt.Errorf("read record: %w", err)
	}

	var data m_country.Data
	if err := row.ToStruct(&data); err != nil {
		return domain.Record{}, fmt.Errorf("parse record: %w", err)
	}

	return domain.Record{UID: data.UID, Name: data.Name, Code: data.Code}, nil
}

// Save upserts the record row and appends a revision, atomically.
func (s *SpannerStore) Save(ctx context.Context, rec domain.Record) error {
	now := s.clock.Now()

	plan := committer.NewPlan()
	plan.Add(s.countries.UpsertMut(&m_country.Data{
		UID:  rec.UID,
		Name: rec.Name,
		Code: rec.Code,
	}, now))
	plan.Add(s.revisions.InsertMut(&m_revision.Data{
		RevisionID: uuid.NewString(),
		UID:        rec.UID,
		Name:       rec.Name,
		Code:       rec.Code,
		SavedAt:    now,
	}))

	if err := s.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Revisions lists journal rows for a record, newest first.
func (s *SpannerStore) Revisions(ctx context.Context, uid string, limit int64) ([]contracts.Revision, error) {
	stmt := query.From(m_revision.TableName).
		Select(
			m_revision.RevisionID,
			m_revision.UID,
			m_revision.Name,
			m_revision.Code,
			m_revision.SavedAt,
		).
		WhereEq(m_revision.UID, uid).
		OrderBy(m_revision.SavedAt, query.Desc).
		Limit(limit).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []contracts.Revision
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list revisions: %w", err)
		}

		var data m_revision.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse revision: %w", err)
		}
		out = append(out, contracts.Revision{
			RevisionID: data.RevisionID,
			Record:     domain.Record{UID: data.UID, Name: data.Name, Code: data.Code},
			SavedAt:    data.SavedAt,
		})
	}

	return out, nil
}
