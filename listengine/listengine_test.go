package listengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatArabic(t *testing.T) {
	e := NewEngine()
	l := e.NewList()
	l.Define(1, Level{Kind: KindArabic, Suffix: "."})

	require.Equal(t, "1.", l.Format(1))
	require.Equal(t, "2.", l.Format(1))
	require.Equal(t, "3.", l.Format(1))
}

func TestFormatAlphaWrapsToDoubleLetter(t *testing.T) {
	e := NewEngine()
	l := e.NewList()
	l.Define(1, Level{Kind: KindLowerAlpha, StartAt: 26})

	require.Equal(t, "z", l.Format(1))
	require.Equal(t, "aa", l.Format(1))
}

func TestFormatRoman(t *testing.T) {
	e := NewEngine()
	l := e.NewList()
	l.Define(1, Level{Kind: KindUpperRoman})

	require.Equal(t, "I", l.Format(1))
	require.Equal(t, "II", l.Format(1))
	require.Equal(t, "III", l.Format(1))

	l.Define(2, Level{Kind: KindLowerRoman, StartAt: 4})
	require.Equal(t, "iv", l.Format(2))
}

func TestFormatBulletDefaultsGlyph(t *testing.T) {
	e := NewEngine()
	l := e.NewList()
	l.Define(1, Level{Kind: KindBullet})
	require.Equal(t, "•", l.Format(1))

	l.Define(2, Level{Kind: KindBullet, BulletChar: '-'})
	require.Equal(t, "-", l.Format(2))
}

func TestMustEmitOnFirstSightAndOnMove(t *testing.T) {
	e := NewEngine()
	l := e.NewList()

	require.True(t, l.MustEmit(1, 10, 20), "first sight of a level must always emit")

	l.SetLevel(1, 10, 20)
	require.False(t, l.MustEmit(1, 10, 20), "unchanged position must not re-emit")
	require.True(t, l.MustEmit(1, 10, 20.5), "a position move beyond epsilon must re-emit")
}

func TestResetBelowOnlyTouchesDeeperLevels(t *testing.T) {
	e := NewEngine()
	l := e.NewList()
	l.Define(1, Level{Kind: KindArabic})
	l.Define(2, Level{Kind: KindArabic})

	l.Format(1) // 1
	l.Format(2) // 1
	l.Format(2) // 2

	l.ResetBelow(1)

	require.Equal(t, "2", l.Format(1), "level 1 counter is untouched by ResetBelow(1)")
	require.Equal(t, "1", l.Format(2), "level 2 counter resets because it is deeper than 1")
}
