// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package account_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/users/account"
	"github.com/suhyeonp/daylist/internal/users/identity"
)

// # Test Fakes

type fakeRepository struct {
	existing   map[string]bool // "email|loginType"
	nextID     int64
	created    []account.Account
	deletedIDs []int64
	nicknames  map[int64]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		existing:  map[string]bool{},
		nextID:    1,
		nicknames: map[int64]string{},
	}
}

func (repository *fakeRepository) CreateWithProfile(_ context.Context, loginType identity.LoginType, email, nickname string) (*account.Account, *account.AccountProfile, error) {
	created := &account.Account{ID: repository.nextID, LoginType: string(loginType)}
	profile := &account.AccountProfile{ID: repository.nextID, AccountID: created.ID, Email: email, Nickname: nickname}
	repository.nextID++
	repository.created = append(repository.created, *created)
	repository.existing[email+"|"+string(loginType)] = true
	return created, profile, nil
}

func (repository *fakeRepository) ExistsByEmailAndLoginType(_ context.Context, email string, loginType identity.LoginType) (bool, error) {
	return repository.existing[email+"|"+string(loginType)], nil
}

func (repository *fakeRepository) FindProfileByAccountID(_ context.Context, accountID int64) (*account.AccountProfile, error) {
	nickname, ok := repository.nicknames[accountID]
	if !ok {
		return nil, apperr.NotFound("Account profile")
	}
	return &account.AccountProfile{AccountID: accountID, Nickname: nickname}, nil
}

func (repository *fakeRepository) UpdateNickname(_ context.Context, accountID int64, nickname string) error {
	repository.nicknames[accountID] = nickname
	return nil
}

func (repository *fakeRepository) DeleteAccount(_ context.Context, accountID int64) error {
	repository.deletedIDs = append(repository.deletedIDs, accountID)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) Issue(accountID int64) (string, error) {
	return "session-" + strconv.FormatInt(accountID, 10), nil
}

// # Signup Tests

/*
TestSignUp_CreatesAccountAndIssuesToken verifies the happy path.
*/
func TestSignUp_CreatesAccountAndIssuesToken(t *testing.T) {
	repository := newFakeRepository()
	service := account.NewService(repository, fakeTokenProvider{})

	result, err := service.SignUp(context.Background(), "provider-token", account.SignUpInput{
		LoginType: identity.LoginTypeKakao,
		Email:     "a@x.com",
		Nickname:  "suhyeon",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "a@x.com", result.Email)
	assert.Equal(t, "suhyeon", result.Nickname)
	assert.Equal(t, "session-1", result.UserToken)
	assert.Len(t, repository.created, 1)
}

/*
TestSignUp_DuplicateIdentityKeyConflicts verifies the (email, loginType)
composite uniqueness: the same pair conflicts, the same email under another
provider does not.
*/
func TestSignUp_DuplicateIdentityKeyConflicts(t *testing.T) {
	repository := newFakeRepository()
	service := account.NewService(repository, fakeTokenProvider{})
	ctx := context.Background()

	_, err := service.SignUp(ctx, "tok", account.SignUpInput{
		LoginType: identity.LoginTypeKakao, Email: "a@x.com", Nickname: "first",
	})
	require.NoError(t, err)

	// 1. Same pair conflicts
	_, err = service.SignUp(ctx, "tok", account.SignUpInput{
		LoginType: identity.LoginTypeKakao, Email: "a@x.com", Nickname: "second",
	})
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)

	// 2. Same email, different provider succeeds
	_, err = service.SignUp(ctx, "tok", account.SignUpInput{
		LoginType: identity.LoginTypeGoogle, Email: "a@x.com", Nickname: "third",
	})
	assert.NoError(t, err)
}

/*
TestSignUp_RequiresProvisionalToken verifies enrollment without the
provisional credential is rejected.
*/
func TestSignUp_RequiresProvisionalToken(t *testing.T) {
	service := account.NewService(newFakeRepository(), fakeTokenProvider{})

	_, err := service.SignUp(context.Background(), "", account.SignUpInput{
		LoginType: identity.LoginTypeGoogle, Email: "a@x.com", Nickname: "x",
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

/*
TestSignUp_ValidatesInput verifies bad payloads fail with field details.
*/
func TestSignUp_ValidatesInput(t *testing.T) {
	service := account.NewService(newFakeRepository(), fakeTokenProvider{})

	_, err := service.SignUp(context.Background(), "tok", account.SignUpInput{
		LoginType: identity.LoginType("FACEBOOK"),
		Email:     "not-an-email",
		Nickname:  "",
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.NotEmpty(t, appError.Details)
}

// # Profile Tests

/*
TestUpdateNickname_Persists verifies nickname changes reach storage.
*/
func TestUpdateNickname_Persists(t *testing.T) {
	repository := newFakeRepository()
	service := account.NewService(repository, fakeTokenProvider{})

	require.NoError(t, service.UpdateNickname(context.Background(), 7, "new-nick"))
	assert.Equal(t, "new-nick", repository.nicknames[7])
}

/*
TestUpdateNickname_RejectsEmpty verifies validation on the new nickname.
*/
func TestUpdateNickname_RejectsEmpty(t *testing.T) {
	service := account.NewService(newFakeRepository(), fakeTokenProvider{})

	err := service.UpdateNickname(context.Background(), 7, "   ")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

/*
TestDelete_RemovesAccount verifies deletion reaches storage.
*/
func TestDelete_RemovesAccount(t *testing.T) {
	repository := newFakeRepository()
	service := account.NewService(repository, fakeTokenProvider{})

	require.NoError(t, service.Delete(context.Background(), 9))
	assert.Equal(t, []int64{9}, repository.deletedIDs)
}
