package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadingTime_EmptyText_IsOneMinute(t *testing.T) {
	require.Equal(t, 1, ReadingTime(""))
	require.Equal(t, 1, ReadingTime("   \n\t  "))
}

func TestReadingTime_ShortText_FloorsAtOneMinute(t *testing.T) {
	require.Equal(t, 1, ReadingTime("just a few words"))
}

func TestReadingTime_RoundsUp(t *testing.T) {
	// 201 words is just over one minute at 200 wpm.
	text := strings.Repeat("word ", 201)
	require.Equal(t, 2, ReadingTime(text))
}

func TestReadingTime_ExactMultiple(t *testing.T) {
	text := strings.Repeat("word ", 400)
	require.Equal(t, 2, ReadingTime(text))
}

func TestReadingTime_MonotonicallyNonDecreasing(t *testing.T) {
	prev := 0
	for words := 0; words <= 1000; words += 50 {
		got := ReadingTime(strings.Repeat("word ", words))
		require.GreaterOrEqual(t, got, 1)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
