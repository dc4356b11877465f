package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"moving-estimate-service/internal/apperr"
	"moving-estimate-service/internal/domain"
	"moving-estimate-service/internal/logx"
	"moving-estimate-service/internal/ports/ordertx"
)

// fakeTxRepo records every row that would be written and can fail at a
// chosen step to exercise rollback behavior.
type fakeTxRepo struct {
	nextID       int64
	customers    []domain.Customer
	options      []domain.OptionalServiceType
	packages     []domain.CustomerPackage
	failCustomer error
	failOption   error
	failPackages error
}

func (f *fakeTxRepo) InsertCustomer(ctx context.Context, c *domain.Customer) (int64, error) {
	if f.failCustomer != nil {
		return 0, f.failCustomer
	}
	f.nextID++
	c.ID = f.nextID
	f.customers = append(f.customers, *c)
	return c.ID, nil
}

func (f *fakeTxRepo) InsertOptionService(ctx context.Context, customerID int64, svc domain.OptionalServiceType) error {
	if f.failOption != nil {
		return f.failOption
	}
	f.options = append(f.options, svc)
	return nil
}

func (f *fakeTxRepo) BatchInsertPackages(ctx context.Context, packages []domain.CustomerPackage) error {
	if f.failPackages != nil {
		return f.failPackages
	}
	f.packages = append(f.packages, packages...)
	return nil
}

// fakeRunner mimics transactional semantics: on error nothing written by
// fn is visible afterwards.
type fakeRunner struct {
	repo       *fakeTxRepo
	committed  bool
	rolledBack bool
}

func (r *fakeRunner) WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) error {
	snapshot := *r.repo
	if err := fn(r.repo); err != nil {
		*r.repo = snapshot
		r.rolledBack = true
		return err
	}
	r.committed = true
	return nil
}

type fakePublisher struct {
	published []domain.RegisterResult
	err       error
}

func (p *fakePublisher) PublishAccepted(ctx context.Context, result domain.RegisterResult) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, result)
	return nil
}

func validOrder() *domain.Order {
	return &domain.Order{
		CustomerName:    "山田太郎",
		Tel:             "0312345678",
		Email:           "taro@example.com",
		OldPrefectureID: "13",
		NewPrefectureID: "27",
		OldAddress:      "千代田1-1",
		NewAddress:      "北区2-2",
		Packages: map[domain.PackageType]int{
			domain.PackageBox:            2,
			domain.PackageBed:            1,
			domain.PackageBicycle:        0,
			domain.PackageWashingMachine: 1,
		},
		OptionalServices: []domain.OptionalServiceType{domain.ServiceWashingMachineInstall},
	}
}

func TestService_Register_WritesAllRows(t *testing.T) {
	t.Parallel()

	repo := &fakeTxRepo{}
	runner := &fakeRunner{repo: repo}
	pub := &fakePublisher{}

	s := NewService(runner, pub, time.Second, logx.Nop(), nil)

	res, err := s.Register(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !runner.committed {
		t.Fatal("expected transaction commit")
	}
	if res.CustomerID != 1 {
		t.Fatalf("expected assigned customer id 1, got %d", res.CustomerID)
	}

	if len(repo.customers) != 1 {
		t.Fatalf("expected exactly one customer row, got %d", len(repo.customers))
	}
	if repo.customers[0].Name != "山田太郎" || repo.customers[0].OldPrefectureID != "13" {
		t.Fatalf("customer projection mismatch: %+v", repo.customers[0])
	}

	if len(repo.options) != 1 || repo.options[0] != domain.ServiceWashingMachineInstall {
		t.Fatalf("expected exactly one option-service row, got %#v", repo.options)
	}

	if len(repo.packages) != 4 {
		t.Fatalf("expected 4 package rows, got %d", len(repo.packages))
	}
	wantQty := map[domain.PackageType]int{
		domain.PackageBox:            2,
		domain.PackageBed:            1,
		domain.PackageBicycle:        0,
		domain.PackageWashingMachine: 1,
	}
	for _, p := range repo.packages {
		if p.CustomerID != 1 {
			t.Fatalf("package row for wrong customer: %+v", p)
		}
		if p.Quantity != wantQty[p.PackageType] {
			t.Fatalf("quantity mismatch for %s: %d", p.PackageType, p.Quantity)
		}
	}

	if len(pub.published) != 1 || pub.published[0].CustomerID != 1 {
		t.Fatalf("expected one published event, got %#v", pub.published)
	}
}

func TestService_Register_NoOptionRowWithoutSelection(t *testing.T) {
	t.Parallel()

	repo := &fakeTxRepo{}
	runner := &fakeRunner{repo: repo}
	s := NewService(runner, nil, time.Second, logx.Nop(), nil)

	order := validOrder()
	order.OptionalServices = nil

	if _, err := s.Register(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.options) != 0 {
		t.Fatalf("expected no option-service rows, got %d", len(repo.options))
	}
	// zero-quantity rows still written
	if len(repo.packages) != 4 {
		t.Fatalf("expected 4 package rows, got %d", len(repo.packages))
	}
}

func TestService_Register_PackageFailureLeavesNothing(t *testing.T) {
	t.Parallel()

	boom := errors.New("constraint violation")
	repo := &fakeTxRepo{failPackages: boom}
	runner := &fakeRunner{repo: repo}
	s := NewService(runner, nil, time.Second, logx.Nop(), nil)

	_, err := s.Register(context.Background(), validOrder())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}
	if !runner.rolledBack {
		t.Fatal("expected rollback")
	}
	if len(repo.customers) != 0 || len(repo.options) != 0 || len(repo.packages) != 0 {
		t.Fatalf("partial rows survived rollback: %+v", repo)
	}
}

func TestService_Register_CustomerFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	repo := &fakeTxRepo{failCustomer: boom}
	runner := &fakeRunner{repo: repo}
	s := NewService(runner, nil, time.Second, logx.Nop(), nil)

	if _, err := s.Register(context.Background(), validOrder()); !errors.Is(err, boom) {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestService_Register_InvalidOrder(t *testing.T) {
	t.Parallel()

	s := NewService(&fakeRunner{repo: &fakeTxRepo{}}, nil, time.Second, logx.Nop(), nil)

	if _, err := s.Register(context.Background(), nil); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for nil order, got %v", err)
	}

	order := validOrder()
	order.Packages[domain.PackageBox] = -2
	if _, err := s.Register(context.Background(), order); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for negative quantity, got %v", err)
	}
}

func TestService_Register_PublishFailureDoesNotFailOrder(t *testing.T) {
	t.Parallel()

	repo := &fakeTxRepo{}
	runner := &fakeRunner{repo: repo}
	pub := &fakePublisher{err: errors.New("broker unavailable")}
	s := NewService(runner, pub, time.Second, logx.Nop(), nil)

	res, err := s.Register(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("publish failure must not fail registration: %v", err)
	}
	if res.CustomerID == 0 {
		t.Fatal("expected assigned customer id")
	}
	if len(repo.customers) != 1 {
		t.Fatal("order must stay persisted")
	}
}

type countingCounter struct{ n int }

func (c *countingCounter) Inc() { c.n++ }

func TestService_Register_CountsRegistrations(t *testing.T) {
	t.Parallel()

	c := &countingCounter{}
	s := NewService(&fakeRunner{repo: &fakeTxRepo{}}, nil, time.Second, logx.Nop(), c)

	if _, err := s.Register(context.Background(), validOrder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.n != 1 {
		t.Fatalf("expected counter increment, got %d", c.n)
	}
}
