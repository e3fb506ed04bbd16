package tax

import (
	"context"
	"testing"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBracketRepo struct {
	brackets []tax.Bracket
	creates  int
}

func (f *fakeBracketRepo) Create(_ context.Context, bracket tax.Bracket) (tax.Bracket, error) {
	for _, existing := range f.brackets {
		if existing.FiscalYear != bracket.FiscalYear || existing.MaritalStatus != bracket.MaritalStatus {
			continue
		}
		if existing.MaxAmount == nil || bracket.MinAmount.LessThan(*existing.MaxAmount) {
			if bracket.MaxAmount == nil || existing.MinAmount.LessThan(*bracket.MaxAmount) {
				return tax.Bracket{}, tax.ErrOverlappingBracket
			}
		}
	}
	f.brackets = append(f.brackets, bracket)
	f.creates++
	return bracket, nil
}

func (f *fakeBracketRepo) GetByFiscalYear(_ context.Context, fiscalYear string, status employee.MaritalStatus) ([]tax.Bracket, error) {
	var result []tax.Bracket
	for _, b := range f.brackets {
		if b.FiscalYear == fiscalYear && b.MaritalStatus == status {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBracketRepo) ListByFiscalYear(_ context.Context, fiscalYear string) ([]tax.Bracket, error) {
	var result []tax.Bracket
	for _, b := range f.brackets {
		if b.FiscalYear == fiscalYear {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBracketRepo) Delete(_ context.Context, id string) error {
	for i, b := range f.brackets {
		if b.ID == id {
			f.brackets = append(f.brackets[:i], f.brackets[i+1:]...)
			return nil
		}
	}
	return tax.ErrBracketNotFound
}

func TestSeedFiscalYear(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBracketRepo{}
	svc := &BracketServiceImpl{bracketRepo: repo}

	seeded, err := svc.SeedFiscalYear(ctx, "2082/83")
	require.NoError(t, err)
	require.Len(t, seeded, 10, "five slabs per marital status")

	for _, b := range seeded {
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, "2082/83", b.FiscalYear)
	}

	t.Run("seeding again is a no-op", func(t *testing.T) {
		createsBefore := repo.creates
		again, err := svc.SeedFiscalYear(ctx, "2082/83")
		require.NoError(t, err)
		assert.Len(t, again, 10)
		assert.Equal(t, createsBefore, repo.creates, "existing year left untouched")
	})

	t.Run("another year seeds independently", func(t *testing.T) {
		other, err := svc.SeedFiscalYear(ctx, "2083/84")
		require.NoError(t, err)
		assert.Len(t, other, 10)
	})

	t.Run("malformed label rejected", func(t *testing.T) {
		_, err := svc.SeedFiscalYear(ctx, "2082-83")
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestCreateBracket(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBracketRepo{}
	svc := &BracketServiceImpl{bracketRepo: repo}

	upper := decimal.NewFromInt(500_000)
	created, err := svc.CreateBracket(ctx, tax.CreateBracketRequest{
		FiscalYear:    "2082/83",
		MaritalStatus: "single",
		MinAmount:     decimal.Zero,
		MaxAmount:     &upper,
		Rate:          decimal.New(1, -2),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	t.Run("overlap surfaces the repository error", func(t *testing.T) {
		top := decimal.NewFromInt(400_000)
		_, err := svc.CreateBracket(ctx, tax.CreateBracketRequest{
			FiscalYear:    "2082/83",
			MaritalStatus: "single",
			MinAmount:     decimal.NewFromInt(300_000),
			MaxAmount:     &top,
			Rate:          decimal.New(10, -2),
		})
		assert.ErrorIs(t, err, tax.ErrOverlappingBracket)
	})

	t.Run("max below min fails validation", func(t *testing.T) {
		bad := decimal.NewFromInt(100)
		_, err := svc.CreateBracket(ctx, tax.CreateBracketRequest{
			FiscalYear:    "2082/83",
			MaritalStatus: "single",
			MinAmount:     decimal.NewFromInt(200),
			MaxAmount:     &bad,
			Rate:          decimal.New(1, -2),
		})
		assert.Error(t, err)
	})
}

func TestListBrackets_OrderedWithinStatus(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBracketRepo{}
	svc := &BracketServiceImpl{bracketRepo: repo}

	_, err := svc.SeedFiscalYear(ctx, "2082/83")
	require.NoError(t, err)

	single, err := repo.GetByFiscalYear(ctx, "2082/83", employee.MaritalStatusSingle)
	require.NoError(t, err)
	require.Len(t, single, 5)

	// Slabs are contiguous: each upper bound is the next lower bound.
	for i := 0; i < len(single)-1; i++ {
		require.NotNil(t, single[i].MaxAmount)
		assert.True(t, single[i].MaxAmount.Equal(single[i+1].MinAmount),
			"slab %d upper bound must meet slab %d lower bound", i, i+1)
	}
	assert.Nil(t, single[len(single)-1].MaxAmount, "top slab is unbounded")
}
