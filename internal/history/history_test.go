package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Content: "primeira"},
		{Role: RoleAssistant, Content: "resposta"},
		{Role: RoleUser, Content: "segunda"},
	}

	got := Window(turns, 2, 200)
	require.Len(t, got, 2)
	assert.Equal(t, "resposta", got[0].Content)
	assert.Equal(t, "segunda", got[1].Content)

	assert.Nil(t, Window(nil, 8, 200))
	assert.Nil(t, Window(turns, 0, 200))

	// Window copies, the input stays intact.
	long := []Turn{{Role: RoleUser, Content: strings.Repeat("a", 300)}}
	got = Window(long, 8, 200)
	assert.Len(t, []rune(got[0].Content), 200)
	assert.Len(t, []rune(long[0].Content), 300)
}

func TestTruncateRunes(t *testing.T) {
	// Truncation counts runes, not bytes.
	s := strings.Repeat("ã", 250)
	assert.Equal(t, 200, len([]rune(Truncate(s, 200))))
	assert.Equal(t, "oi", Truncate("oi", 200))
	assert.Equal(t, s, Truncate(s, 0))
}

func TestUserName(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Content: "ola", UserName: "Rafael Souza"},
		{Role: RoleAssistant, Content: "ola!"},
		{Role: RoleUser, Content: "cadê o refeitorio"},
	}
	assert.Equal(t, "Rafael", UserName(turns))

	// Latest named user turn wins.
	turns = append(turns, Turn{Role: "usuario", Content: "oi", UserName: "Maria"})
	assert.Equal(t, "Maria", UserName(turns))

	assert.Equal(t, "", UserName(nil))
	assert.Equal(t, "", UserName([]Turn{{Role: RoleAssistant, UserName: "Bot"}}))
	assert.Equal(t, "", UserName([]Turn{{Role: RoleUser, UserName: "   "}}))
}
