package usecases_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lancerdesk.backend/internal/domain/entities"
	domainerrors "lancerdesk.backend/internal/domain/errors"
	"lancerdesk.backend/internal/usecases"
	"lancerdesk.backend/pkg/utils"
)

func draftInvoice() *entities.Invoice {
	return &entities.Invoice{
		UserID:    utils.GenerateUUIDv7(),
		ClientID:  utils.GenerateUUIDv7(),
		Number:    "2026-001",
		IssueDate: time.Now(),
		DueDate:   time.Now().AddDate(0, 0, 14),
		Items: []entities.InvoiceItem{
			{Description: "Design sprint", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(4000)},
		},
	}
}

func newInvoiceUsecase() (*usecases.InvoiceUsecase, *MockInvoiceRepository, *MockPaymentRepository, *MockUnitOfWork) {
	invoices := new(MockInvoiceRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUnitOfWork)
	return usecases.NewInvoiceUsecase(invoices, payments, uow), invoices, payments, uow
}

func TestInvoiceUsecase_CreateInvoice(t *testing.T) {
	uc, invoices, _, uow := newInvoiceUsecase()

	inv := draftInvoice()
	invoices.On("GetByNumber", mock.Anything, inv.UserID, inv.Number).Return(nil, domainerrors.ErrNotFound).Once()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	invoices.On("Create", mock.Anything, inv).Return(nil).Once()

	require.NoError(t, uc.CreateInvoice(context.Background(), inv))
	require.Equal(t, entities.InvoiceStatusDraft, inv.Status)
	require.True(t, inv.Total.Equal(decimal.NewFromInt(4000)))
	require.Equal(t, inv.ID, inv.Items[0].InvoiceID)
	require.Equal(t, "EUR", inv.Currency)
	invoices.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestInvoiceUsecase_CreateInvoice_WrappedNotFoundStillCreates(t *testing.T) {
	uc, invoices, _, uow := newInvoiceUsecase()

	inv := draftInvoice()
	invoices.On("GetByNumber", mock.Anything, inv.UserID, inv.Number).
		Return(nil, fmt.Errorf("get invoice by number: %w", domainerrors.ErrNotFound)).Once()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	invoices.On("Create", mock.Anything, inv).Return(nil).Once()

	require.NoError(t, uc.CreateInvoice(context.Background(), inv))
	invoices.AssertExpectations(t)
}

func TestInvoiceUsecase_CreateInvoice_RejectsInvalidInput(t *testing.T) {
	uc, invoices, _, _ := newInvoiceUsecase()

	inv := draftInvoice()
	inv.Number = "  "
	require.ErrorIs(t, uc.CreateInvoice(context.Background(), inv), domainerrors.ErrInvalidInput)
	invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceUsecase_CreateInvoice_DuplicateNumber(t *testing.T) {
	uc, invoices, _, _ := newInvoiceUsecase()

	inv := draftInvoice()
	invoices.On("GetByNumber", mock.Anything, inv.UserID, inv.Number).
		Return(&entities.Invoice{ID: utils.GenerateUUIDv7()}, nil).Once()

	require.ErrorIs(t, uc.CreateInvoice(context.Background(), inv), domainerrors.ErrAlreadyExists)
	invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceUsecase_UpdateDraft_RejectsSentInvoice(t *testing.T) {
	uc, invoices, _, _ := newInvoiceUsecase()

	inv := draftInvoice()
	inv.ID = utils.GenerateUUIDv7()
	invoices.On("GetByID", mock.Anything, inv.ID).
		Return(&entities.Invoice{ID: inv.ID, Status: entities.InvoiceStatusSent}, nil).Once()

	require.ErrorIs(t, uc.UpdateDraft(context.Background(), inv), domainerrors.ErrInvoiceNotDraft)
	invoices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvoiceUsecase_SendInvoice(t *testing.T) {
	uc, invoices, _, _ := newInvoiceUsecase()

	id := utils.GenerateUUIDv7()
	invoices.On("GetByID", mock.Anything, id).
		Return(&entities.Invoice{ID: id, Status: entities.InvoiceStatusDraft}, nil).Once()
	invoices.On("UpdateStatus", mock.Anything, id, entities.InvoiceStatusSent).Return(nil).Once()

	require.NoError(t, uc.SendInvoice(context.Background(), id))
	invoices.AssertExpectations(t)
}

func TestInvoiceUsecase_CancelInvoice_RejectsPaid(t *testing.T) {
	uc, invoices, _, _ := newInvoiceUsecase()

	id := utils.GenerateUUIDv7()
	invoices.On("GetByID", mock.Anything, id).
		Return(&entities.Invoice{ID: id, Status: entities.InvoiceStatusPaid}, nil).Once()

	require.ErrorIs(t, uc.CancelInvoice(context.Background(), id), domainerrors.ErrBadRequest)
	invoices.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceUsecase_RecordPayment_PartialAndFull(t *testing.T) {
	uc, invoices, payments, uow := newInvoiceUsecase()

	id := utils.GenerateUUIDv7()
	invoice := &entities.Invoice{
		ID:         id,
		Status:     entities.InvoiceStatusSent,
		Total:      decimal.NewFromInt(4000),
		AmountPaid: decimal.Zero,
	}
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	invoices.On("GetByID", mock.Anything, id).Return(invoice, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	invoices.On("Update", mock.Anything, invoice).Return(nil)

	updated, err := uc.RecordPayment(context.Background(), &entities.Payment{
		InvoiceID: id,
		Amount:    decimal.NewFromInt(1000),
		Method:    entities.PaymentMethodBankTransfer,
		PaidAt:    time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, entities.InvoiceStatusSent, updated.Status)
	require.True(t, updated.AmountPaid.Equal(decimal.NewFromInt(1000)))

	updated, err = uc.RecordPayment(context.Background(), &entities.Payment{
		InvoiceID: id,
		Amount:    decimal.NewFromInt(3000),
		Method:    entities.PaymentMethodCard,
		PaidAt:    time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, entities.InvoiceStatusPaid, updated.Status)
	require.True(t, updated.Balance().IsZero())
}

func TestInvoiceUsecase_RecordPayment_Overpay(t *testing.T) {
	uc, invoices, payments, uow := newInvoiceUsecase()

	id := utils.GenerateUUIDv7()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	invoices.On("GetByID", mock.Anything, id).Return(&entities.Invoice{
		ID:         id,
		Status:     entities.InvoiceStatusSent,
		Total:      decimal.NewFromInt(100),
		AmountPaid: decimal.NewFromInt(50),
	}, nil).Once()

	_, err := uc.RecordPayment(context.Background(), &entities.Payment{
		InvoiceID: id,
		Amount:    decimal.NewFromInt(60),
		PaidAt:    time.Now(),
	})
	require.ErrorIs(t, err, domainerrors.ErrInvoiceOverpaid)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceUsecase_RecordPayment_RejectsDraft(t *testing.T) {
	uc, invoices, payments, uow := newInvoiceUsecase()

	id := utils.GenerateUUIDv7()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	invoices.On("GetByID", mock.Anything, id).Return(&entities.Invoice{
		ID:     id,
		Status: entities.InvoiceStatusDraft,
		Total:  decimal.NewFromInt(100),
	}, nil).Once()

	_, err := uc.RecordPayment(context.Background(), &entities.Payment{
		InvoiceID: id,
		Amount:    decimal.NewFromInt(10),
		PaidAt:    time.Now(),
	})
	require.ErrorIs(t, err, domainerrors.ErrBadRequest)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceUsecase_DeleteInvoice_OnlyDrafts(t *testing.T) {
	uc, invoices, _, _ := newInvoiceUsecase()

	draftID := utils.GenerateUUIDv7()
	invoices.On("GetByID", mock.Anything, draftID).
		Return(&entities.Invoice{ID: draftID, Status: entities.InvoiceStatusDraft}, nil).Once()
	invoices.On("Delete", mock.Anything, draftID).Return(nil).Once()
	require.NoError(t, uc.DeleteInvoice(context.Background(), draftID))

	sentID := utils.GenerateUUIDv7()
	invoices.On("GetByID", mock.Anything, sentID).
		Return(&entities.Invoice{ID: sentID, Status: entities.InvoiceStatusSent}, nil).Once()
	require.ErrorIs(t, uc.DeleteInvoice(context.Background(), sentID), domainerrors.ErrInvoiceNotDraft)
	invoices.AssertExpectations(t)
}
