package msword

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/fontreg"
	"github.com/Distrotech/libmwaw-sub009/listengine"
	"github.com/Distrotech/libmwaw-sub009/listener"
	"github.com/Distrotech/libmwaw-sub009/sink"
)

func newTestListener() (*listener.Listener, *sink.Recorder) {
	r := sink.NewRecorder()
	l := listener.New(r, fontreg.NewRegistry(), listengine.NewEngine(),
		[]doctypes.PageSpan{{FormWidth: 612, FormLength: 792}})
	l.StartDocument(doctypes.NewProperties())
	l.OpenSection(nil, doctypes.UnitPoint)
	return l, r
}

func TestApplyPAPXJustificationAndIndent(t *testing.T) {
	l, _ := newTestListener()
	data := []byte{
		papxJustification, 0x02, // right
		papxLeftIndent, 0xA0, 0x05, // 1440 twips = 1 inch
	}
	unk := applyPAPX(l, data)
	require.Nil(t, unk)
}

func TestApplyPAPXStopsOnUnknownOpcode(t *testing.T) {
	l, _ := newTestListener()
	data := []byte{
		papxJustification, 0x01,
		0x7F, 0x00, 0x00, // unrecognized opcode
	}
	unk := applyPAPX(l, data)
	require.NotNil(t, unk)
	require.Equal(t, byte(0x7F), unk.opcode)
	require.Equal(t, 2, unk.offset)
}

func TestApplyPAPXTruncatedOperandIsUnknown(t *testing.T) {
	l, _ := newTestListener()
	data := []byte{papxLeftIndent, 0x01} // missing second operand byte
	unk := applyPAPX(l, data)
	require.NotNil(t, unk)
	require.Equal(t, byte(papxLeftIndent), unk.opcode)
}

func TestTwipsToInches(t *testing.T) {
	require.InDelta(t, 1.0, twipsToInches(1440), 0.0001)
	require.InDelta(t, 0.5, twipsToInches(720), 0.0001)
}
