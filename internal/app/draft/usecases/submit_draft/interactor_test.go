package submit_draft

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/product-draft-service/internal/app/draft/domain"
	"github.com/murkotick/product-draft-service/internal/app/draft/repo"
	"github.com/murkotick/product-draft-service/internal/app/draft/store"
	"github.com/murkotick/product-draft-service/internal/pkg/clock"
	commitplan "github.com/murkotick/product-draft-service/internal/pkg/committer"
	"github.com/murkotick/product-draft-service/internal/pkg/dictionary"
)

type fakeCommitter struct {
	plans   []*commitplan.Plan
	err     error
	entered chan struct{}
	release chan struct{}
}

func (c *fakeCommitter) Apply(ctx context.Context, plan *commitplan.Plan) error {
	if c.entered != nil {
		c.entered <- struct{}{}
		<-c.release
	}
	c.plans = append(c.plans, plan)
	return c.err
}

type fakeReadModel struct {
	taken map[string]bool
	err   error
}

func (rm *fakeReadModel) TakenSKUs(ctx context.Context, skus []string) (map[string]bool, error) {
	return rm.taken, rm.err
}

type capturingCatalogRepo struct {
	*repo.CatalogRepo
	products []domain.Product
}

func (r *capturingCatalogRepo) PublishMuts(productID string, p domain.Product, now time.Time) []*spanner.Mutation {
	r.products = append(r.products, p)
	return r.CatalogRepo.PublishMuts(productID, p, now)
}

type fixture struct {
	ctx       context.Context
	sessions  *repo.SessionRepo
	catalog   *capturingCatalogRepo
	committer *fakeCommitter
	readModel *fakeReadModel
	it        *Interactor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	clk.Step = time.Second
	labels, err := dictionary.Load()
	require.NoError(t, err)

	f := &fixture{
		ctx:       context.Background(),
		sessions:  repo.NewSessionRepo(clk),
		catalog:   &capturingCatalogRepo{CatalogRepo: repo.NewCatalogRepo()},
		committer: &fakeCommitter{},
		readModel: &fakeReadModel{taken: map[string]bool{}},
	}
	f.it = NewInteractor(f.sessions, f.catalog, repo.NewOutboxRepo(), f.committer, f.readModel, labels, clk)

	_, err = f.sessions.Create(f.ctx, "d1", domain.DefaultSession())
	require.NoError(t, err)
	return f
}

func (f *fixture) with(t *testing.T, fn func(s *store.Store)) {
	t.Helper()
	require.NoError(t, f.sessions.With(f.ctx, "d1", func(s *store.Store) error {
		fn(s)
		return nil
	}))
}

func (f *fixture) snapshot(t *testing.T) domain.Snapshot {
	t.Helper()
	var snap domain.Snapshot
	f.with(t, func(s *store.Store) { snap = s.Snapshot() })
	return snap
}

func fillValidDraft(s *store.Store) {
	sku := "TSHIRT"
	name := "T-Shirt"
	s.SetBasicInfo(domain.BasicInfo{SKU: &sku})
	s.UpsertTranslation("en", domain.TranslationFields{Name: &name})
	s.UpsertPrice("1", domain.PriceFields{Price: domain.NewMoney(1999, 100)})
}

func TestSubmit_Success(t *testing.T) {
	f := newFixture(t)
	f.with(t, fillValidDraft)

	resp, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ProductID)
	assert.Empty(t, resp.Errors)

	// product, translation, price and the outbox event
	require.Len(t, f.committer.plans, 1)
	assert.Equal(t, 4, f.committer.plans[0].Len())

	require.Len(t, f.catalog.products, 1)
	assert.Equal(t, domain.ProductStatusDraft, f.catalog.products[0].Status)
	assert.Equal(t, "TSHIRT", f.catalog.products[0].SKU)

	snap := f.snapshot(t)
	assert.Empty(t, snap.Product.SKU)
	assert.Empty(t, snap.Product.Translations)
	assert.False(t, snap.Dirty)
	assert.False(t, snap.Session.Submitting)
}

func TestSubmit_PublishFlag(t *testing.T) {
	f := newFixture(t)
	f.with(t, fillValidDraft)

	_, err := f.it.Execute(f.ctx, Request{DraftID: "d1", Publish: true})
	require.NoError(t, err)

	require.Len(t, f.catalog.products, 1)
	assert.Equal(t, domain.ProductStatusPublished, f.catalog.products[0].Status)
}

func TestSubmit_InvalidDraftKeepsEdits(t *testing.T) {
	f := newFixture(t)
	name := "T-Shirt"
	f.with(t, func(s *store.Store) {
		s.UpsertTranslation("en", domain.TranslationFields{Name: &name})
	})

	resp, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
	require.ErrorIs(t, err, domain.ErrDraftInvalid)
	require.NotNil(t, resp)
	assert.Equal(t, "SKU is required", resp.Errors["sku"])
	assert.Equal(t, "At least one price is required", resp.Errors["prices"])
	assert.Empty(t, f.committer.plans)

	snap := f.snapshot(t)
	assert.False(t, snap.Session.Submitting)
	assert.Equal(t, resp.Errors, snap.Session.Errors)
	require.Len(t, snap.Product.Translations, 1)
	assert.True(t, snap.Dirty)
}

func TestSubmit_LocalizesErrorsInActiveLanguage(t *testing.T) {
	f := newFixture(t)
	f.with(t, func(s *store.Store) {
		s.SetActiveLanguage(domain.Language{ID: 2, Code: "fr", Name: "Français"})
	})

	resp, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
	require.ErrorIs(t, err, domain.ErrDraftInvalid)
	assert.Equal(t, "Le SKU est obligatoire", resp.Errors["sku"])
}

func TestSubmit_SKUTakenInCatalog(t *testing.T) {
	f := newFixture(t)
	f.with(t, fillValidDraft)
	f.readModel.taken = map[string]bool{"TSHIRT": true}

	resp, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
	require.ErrorIs(t, err, domain.ErrDraftInvalid)
	assert.Equal(t, "SKU is already used by another product", resp.Errors["sku"])
}

func TestSubmit_ReadModelFailureReleasesDraft(t *testing.T) {
	f := newFixture(t)
	f.with(t, fillValidDraft)
	boom := errors.New("spanner unavailable")
	f.readModel.err = boom

	_, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
	require.ErrorIs(t, err, boom)
	assert.False(t, f.snapshot(t).Session.Submitting)
}

func TestSubmit_CommitFailureKeepsDraft(t *testing.T) {
	f := newFixture(t)
	f.with(t, fillValidDraft)
	boom := errors.New("aborted")
	f.committer.err = boom

	resp, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, resp)

	snap := f.snapshot(t)
	assert.False(t, snap.Session.Submitting)
	assert.Equal(t, "TSHIRT", snap.Product.SKU)
}

func TestSubmit_AlreadySubmitting(t *testing.T) {
	f := newFixture(t)
	f.with(t, func(s *store.Store) {
		fillValidDraft(s)
		s.SetSubmitting(true)
	})

	_, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
	require.ErrorIs(t, err, domain.ErrSubmissionInProgress)
	assert.Empty(t, f.committer.plans)
	assert.True(t, f.snapshot(t).Session.Submitting)
}

func TestSubmit_ConcurrentAttemptRejected(t *testing.T) {
	f := newFixture(t)
	f.with(t, fillValidDraft)
	f.committer.entered = make(chan struct{})
	f.committer.release = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
		done <- err
	}()

	<-f.committer.entered
	_, err := f.it.Execute(f.ctx, Request{DraftID: "d1"})
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)

	close(f.committer.release)
	require.NoError(t, <-done)
	assert.Len(t, f.committer.plans, 1)
}

func TestSubmit_UnknownDraft(t *testing.T) {
	f := newFixture(t)

	_, err := f.it.Execute(f.ctx, Request{DraftID: "missing"})
	require.ErrorIs(t, err, domain.ErrDraftNotFound)
}
