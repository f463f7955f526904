package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rob-gra/cdis-codec/entitystate"
	"github.com/rob-gra/cdis-codec/enum"
	"github.com/rob-gra/cdis-codec/pdu"
	"github.com/rob-gra/cdis-codec/record"
	"github.com/rob-gra/cdis-codec/state"
	"github.com/stretchr/testify/require"
)

func TestRun_DecodesEntityStateCapture(t *testing.T) {
	body := entitystate.Body{
		EntityID:   record.NewEntityID(7, 127, 255),
		ForceID:    8,
		EntityType: record.NewEntityType(1, 2, 153, 0, 0, 0, 0),
		Marking:    "TEST",
	}
	compact, _, err := entitystate.Encode(body, state.NewEncoderState(), entitystate.NewFullUpdateOptions(), time.Unix(0, 0))
	require.NoError(t, err)

	header := pdu.NewCompactHeader(enum.BodyEntityState, 1)
	_, buf, err := pdu.EncodeCompactPDU(header, compact)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "capture.cdis")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "Entity State")
	require.Contains(t, out.String(), "full update:    true")
}
