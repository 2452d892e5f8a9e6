package csvkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	rows := Parse("studentId,name\nS1,Asha\nS2,Binod\n")
	require.Len(t, rows, 2)
	assert.Equal(t, "S1", rows[0]["studentId"])
	assert.Equal(t, "Asha", rows[0]["name"])
	assert.Equal(t, "Binod", rows[1]["name"])
}

func TestParseQuotedFields(t *testing.T) {
	rows := Parse("studentId,name\nS1,\"Shrestha, Asha\"\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "Shrestha, Asha", rows[0]["name"])
}

func TestParseDoubledQuoteEscape(t *testing.T) {
	rows := Parse("studentId,note\nS1,\"said \"\"hello\"\" twice\"\n")
	require.Len(t, rows, 1)
	assert.Equal(t, `said "hello" twice`, rows[0]["note"])
}

func TestParseTrimsWhitespace(t *testing.T) {
	rows := Parse("studentId,name\n  S1 ,  Asha  \n")
	require.Len(t, rows, 1)
	assert.Equal(t, "S1", rows[0]["studentId"])
	assert.Equal(t, "Asha", rows[0]["name"])
}

func TestParseDropsArityMismatch(t *testing.T) {
	// Second data row has three fields against a two-column header.
	rows := Parse("studentId,name\nS1,Asha\nS2,Binod,extra\nS3,Chitra\n")
	require.Len(t, rows, 2)
	assert.Equal(t, "S1", rows[0]["studentId"])
	assert.Equal(t, "S3", rows[1]["studentId"])
}

func TestParseBlankFieldIsAbsent(t *testing.T) {
	rows := Parse("studentId,name,email\nS1,,a@b.edu\n")
	require.Len(t, rows, 1)
	_, ok := rows[0].Get("name")
	assert.False(t, ok)
	v, ok := rows[0].Get("email")
	assert.True(t, ok)
	assert.Equal(t, "a@b.edu", v)
}

func TestParseSkipsBlankLines(t *testing.T) {
	rows := Parse("studentId,name\n\nS1,Asha\n   \nS2,Binod\n")
	require.Len(t, rows, 2)
}

func TestParseCRLF(t *testing.T) {
	rows := Parse("studentId,name\r\nS1,Asha\r\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0]["name"])
}

func TestParseDegenerateInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("studentId,name\n"))
	assert.Empty(t, Parse("studentId,name"))
}

func TestTokenizeKeepsAllRows(t *testing.T) {
	table := Tokenize("a,b\n1,2,3\n4\n")
	require.Len(t, table, 3)
	assert.Len(t, table[1], 3)
	assert.Len(t, table[2], 1)
}

func TestCleanFieldStripsResidualQuotes(t *testing.T) {
	assert.Equal(t, "plain", cleanField(` "plain" `))
	assert.Equal(t, "x", cleanField("x"))
	assert.Equal(t, `"`, cleanField(`"`))
}
