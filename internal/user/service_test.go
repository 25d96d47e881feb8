package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/realty/internal/user"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    user.CreateParams
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: user.CreateParams{Email: "ada@example.com", Name: "Ada"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:   "EmailInUse",
			params: user.CreateParams{Email: "ada@example.com", Name: "Ada"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ada@example.com").
					Return(&user.User{ID: uuid.New(), Email: "ada@example.com"}, nil)
			},
			wantErr: user.ErrEmailInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_List_ClampsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)

	// page 0 and an oversized page size normalize to page 1 of 100.
	repo.EXPECT().ListUsers(gomock.Any(), 0, 100).Return(nil, 0, nil)

	svc := user.NewService(repo)

	_, _, err := svc.List(context.Background(), 0, 500)
	require.NoError(t, err)
}

func TestService_AgentNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)

	known := uuid.New()
	unknown := uuid.New()

	repo.EXPECT().
		GetBasicByIDs(gomock.Any(), []uuid.UUID{known, unknown}).
		Return([]user.Basic{{ID: known, Name: "Ada"}}, nil)

	svc := user.NewService(repo)

	names, err := svc.AgentNames(context.Background(), []uuid.UUID{known, unknown})
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]string{known: "Ada"}, names)
}

func TestService_AgentNames_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)

	svc := user.NewService(repo)

	names, err := svc.AgentNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCreateParamsValidate(t *testing.T) {
	assert.Empty(t, user.CreateParams{Email: "a@b.co", Name: "Ada"}.Validate())

	errs := user.CreateParams{Email: "nope", Name: "A"}.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "name", errs[1].Field)
}
