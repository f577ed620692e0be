package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nirbeaver/property-management/internal/bus"
	"github.com/nirbeaver/property-management/internal/transaction"
)

var testDate = time.Date(2024, time.October, 27, 0, 0, 0, 0, time.UTC)

func TestService_Create(t *testing.T) {
	propertyID := uuid.New()

	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				PropertyID:  propertyID,
				Type:        transaction.TypeIncome,
				Category:    "Rent",
				Amount:      250000,
				Date:        testDate,
				Description: "October rent",
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				PropertyID: propertyID,
				Type:       transaction.TypeExpense,
				Category:   "Maintenance",
				Amount:     500,
				Date:       testDate,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("boom"))
			},
			wantErr: nil, // repo errors pass through unwrapped
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				PropertyID: propertyID,
				Type:       transaction.TypeIncome,
				Category:   "Rent",
				Amount:     -100,
				Date:       testDate,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "UnknownType",
			params: transaction.CreateParams{
				PropertyID: propertyID,
				Type:       "transfer",
				Category:   "Rent",
				Amount:     100,
				Date:       testDate,
			},
			wantErr: transaction.ErrInvalidType,
		},
		{
			name: "MissingCategory",
			params: transaction.CreateParams{
				PropertyID: propertyID,
				Type:       transaction.TypeIncome,
				Amount:     100,
				Date:       testDate,
			},
			wantErr: transaction.ErrEmptyCategory,
		},
		{
			name: "MissingDate",
			params: transaction.CreateParams{
				PropertyID: propertyID,
				Type:       transaction.TypeIncome,
				Category:   "Rent",
				Amount:     100,
			},
			wantErr: transaction.ErrMissingDate,
		},
		{
			name: "MissingProperty",
			params: transaction.CreateParams{
				Type:     transaction.TypeIncome,
				Category: "Rent",
				Amount:   100,
				Date:     testDate,
			},
			wantErr: transaction.ErrNoProperty,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := transaction.NewMockRepository(ctrl)

			if tc.setupMock != nil {
				tc.setupMock(repo)
			}

			svc := transaction.NewService(repo, bus.New())

			tx, err := svc.Create(context.Background(), tc.params)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.name == "RepoError":
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, tx.ID)
				assert.Equal(t, tc.params.Amount, tx.Amount)
			}
		})
	}
}

func TestService_CreatePublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})

	events := bus.New()
	ch, cancel := events.Subscribe(bus.TopicTransactions)
	defer cancel()

	svc := transaction.NewService(repo, events)

	tx, err := svc.Create(context.Background(), transaction.CreateParams{
		PropertyID: uuid.New(),
		Type:       transaction.TypeIncome,
		Category:   "Rent",
		Amount:     1000,
		Date:       testDate,
	})
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, "created", ev.Action)
		assert.Equal(t, tx.ID.String(), ev.ID)
	default:
		t.Fatal("expected a transactions event")
	}
}

func TestService_CreateBatch(t *testing.T) {
	propertyID := uuid.New()

	existing := &transaction.Transaction{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		Type:        transaction.TypeIncome,
		Category:    "Rent",
		Amount:      250000,
		Date:        testDate,
		Description: "October rent",
	}

	params := []transaction.CreateParams{
		{
			// Duplicate of the existing record.
			PropertyID:  propertyID,
			Type:        transaction.TypeIncome,
			Category:    "Rent",
			Amount:      250000,
			Date:        testDate,
			Description: "October rent",
		},
		{
			PropertyID:  propertyID,
			Type:        transaction.TypeExpense,
			Category:    "Utilities",
			Amount:      30000,
			Date:        testDate,
			Description: "Water",
		},
	}

	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		Return([]*transaction.Transaction{existing}, nil)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})

	svc := transaction.NewService(repo, bus.New())

	created, skipped, err := svc.CreateBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, created, 1)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "Water", created[0].Description)
}

func TestService_Get(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	repo.EXPECT().
		GetTransaction(gomock.Any(), id).
		Return(nil, transaction.ErrNotFound)

	svc := transaction.NewService(repo, bus.New())

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
