package service

import (
	c "github.com/half-nothing/flyleague-events/internal/interfaces/config"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	InitValidator(&c.HttpServerLimit{
		UsernameLengthMin: 1,
		UsernameLengthMax: 64,
		PasswordLengthMin: 1,
		PasswordLengthMax: 64,
	})
	os.Exit(m.Run())
}

func newTestUserService() (*UserService, *fakeUserOperation) {
	userOperation, _, _ := newFakeOperations()
	return NewUserService(log.NewNullLogger(), userOperation), userOperation
}

func TestUserRegister(t *testing.T) {
	userService, userOperation := newTestUserService()

	result := userService.UserRegister(&RequestUserRegister{Username: "alice", Password: "pw1"})
	require.False(t, result.Failed())
	require.NotNil(t, result.Data)
	assert.Equal(t, uint(1), result.Data.User.ID)
	assert.False(t, result.Data.User.IsAdmin)

	stored, err := userOperation.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "pw1", stored.Password)
}

func TestUserRegisterMissingFields(t *testing.T) {
	userService, _ := newTestUserService()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw1"},
		{"empty password", "alice", ""},
		{"both empty", "", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := userService.UserRegister(&RequestUserRegister{Username: test.username, Password: test.password})
			require.True(t, result.Failed())
			assert.Equal(t, 400, result.HttpCode)
			assert.Equal(t, "请填写完整信息", result.Status.Description)
		})
	}
}

func TestUserRegisterDuplicateUsername(t *testing.T) {
	userService, _ := newTestUserService()

	require.False(t, userService.UserRegister(&RequestUserRegister{Username: "alice", Password: "pw1"}).Failed())

	result := userService.UserRegister(&RequestUserRegister{Username: "alice", Password: "other"})
	require.True(t, result.Failed())
	assert.Equal(t, 400, result.HttpCode)
	assert.Equal(t, "用户名已存在", result.Status.Description)
}

func TestUserRegisterUsernameTooLong(t *testing.T) {
	userService, _ := newTestUserService()

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	result := userService.UserRegister(&RequestUserRegister{Username: string(long), Password: "pw1"})
	require.True(t, result.Failed())
	assert.Equal(t, "用户名过长", result.Status.Description)
}

func TestUserLogin(t *testing.T) {
	userService, _ := newTestUserService()
	require.False(t, userService.UserRegister(&RequestUserRegister{Username: "alice", Password: "pw1"}).Failed())

	result := userService.UserLogin(&RequestUserLogin{Username: "alice", Password: "pw1"})
	require.False(t, result.Failed())
	require.NotNil(t, result.Data)
	assert.Equal(t, "alice", result.Data.User.Username)
}

func TestUserLoginMissingFields(t *testing.T) {
	userService, _ := newTestUserService()

	result := userService.UserLogin(&RequestUserLogin{Username: "alice"})
	require.True(t, result.Failed())
	assert.Equal(t, "请输入用户名和密码", result.Status.Description)
}

func TestUserLoginWrongCredentials(t *testing.T) {
	userService, _ := newTestUserService()
	require.False(t, userService.UserRegister(&RequestUserRegister{Username: "alice", Password: "pw1"}).Failed())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "bob", "pw1"},
		{"wrong password", "alice", "nope"},
		{"case sensitive username", "Alice", "pw1"},
		{"case sensitive password", "alice", "PW1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := userService.UserLogin(&RequestUserLogin{Username: test.username, Password: test.password})
			require.True(t, result.Failed())
			assert.Equal(t, "用户名或密码错误", result.Status.Description)
		})
	}
}
