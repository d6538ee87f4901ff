package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/pkg/errs"
)

func TestStartSessionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewStartSessionCommand(id)
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	uow := new(MockUoW)
	factory := new(MockSessionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(s *session.Session) bool {
			return s.ID().IsEqual(id) && s.Status() == session.TakingOrder && s.Cart().IsEmpty()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewStartSessionCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestStartSessionCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewStartSessionCommand(kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	uow := new(MockUoW)
	factory := new(MockSessionUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SessionRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(errors.New("duplicate key")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewStartSessionCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "duplicate key")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestStartSessionCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockSessionUoWFactory)

	err := commands.NewStartSessionCommandHandler(factory).Handle(t.Context(), commands.StartSessionCommand{})

	require.ErrorIs(t, err, commands.ErrStartSessionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestSetAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s, err := session.NewSession(kernel.NewUUID())
	require.NoError(t, err)
	s.Cart().Merge([]cart.Line{{Item: "coffee", Quantity: 1}})
	require.NoError(t, s.Cart().SetAddress("old place"))

	cmd, err := commands.NewSetAddressCommand(s.ID(), "12 Elm Street")
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	uow := new(MockUoW)
	factory := new(MockSessionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once(),
		repo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewSetAddressCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "12 Elm Street", s.Cart().Address())
	assert.Equal(t, 1, s.Cart().Quantity("coffee"))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetAddressCommandHandler_Handle_ReopensConfirmedSession(t *testing.T) {
	ctx := t.Context()
	s, err := session.RestoreSession(kernel.NewUUID(), nil, nil, session.Confirmed, "")
	require.NoError(t, err)

	cmd, err := commands.NewSetAddressCommand(s.ID(), "12 Elm Street")
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	uow := new(MockUoW)
	factory := new(MockSessionUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SessionRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
	repo.On("Update", ctx, s).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewSetAddressCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, session.TakingOrder, s.Status())
}

func TestSetAddressCommandHandler_Handle_SessionNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewSetAddressCommand(id, "12 Elm Street")
	require.NoError(t, err)

	repo := new(MockSessionRepository)
	uow := new(MockUoW)
	factory := new(MockSessionUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SessionRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("session", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewSetAddressCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetAddressCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetAddressCommand(kernel.NewUUID(), "x")
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	err = commands.NewSetAddressCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
