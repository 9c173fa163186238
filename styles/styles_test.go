// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/plottools/palette"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestDefaults(t *testing.T) {
	var st Style
	st.Defaults()
	assert.Equal(t, 10.0, st.FontSize)
	assert.Equal(t, 12.0, st.TitleSize)
	assert.Equal(t, 10.0, st.LegendSize) // follows FontSize
	assert.Equal(t, "white", st.Background)
	assert.Equal(t, "black", st.Foreground)
	assert.Equal(t, palette.CycleOrder, st.ColorCycle)

	st = Style{FontSize: 14}
	st.Defaults()
	assert.Equal(t, 14.0, st.FontSize)
	assert.Equal(t, 14.0, st.LegendSize)
}

func TestPreset(t *testing.T) {
	st, err := Preset("paper")
	assert.NoError(t, err)
	assert.Equal(t, 8.0, st.FontSize)
	assert.Equal(t, "white", st.Background) // defaults applied

	_, err = Preset("nope")
	assert.Error(t, err)
	assert.Panics(t, func() { MustPreset("nope") })

	st = MustPreset("dark")
	assert.Equal(t, "black", st.Background)
	assert.Equal(t, "white", st.Foreground)
}

func TestRegisterPreset(t *testing.T) {
	RegisterPreset("talk", Style{FontSize: 14, Grid: true})
	st, err := Preset("talk")
	assert.NoError(t, err)
	assert.Equal(t, 14.0, st.FontSize)
	assert.True(t, st.Grid)
	assert.Contains(t, PresetNames(), "talk")
	delete(presets, "talk")
}

func TestApply(t *testing.T) {
	p := plot.New()
	st := MustPreset("poster")
	err := st.Apply(p)
	assert.NoError(t, err)
	assert.Equal(t, vg.Points(20), p.Title.TextStyle.Font.Size)
	assert.Equal(t, vg.Points(18), p.X.Label.TextStyle.Font.Size)
	assert.Equal(t, vg.Points(16), p.Y.Tick.Label.Font.Size)
	assert.Equal(t, vg.Points(6), p.X.Tick.Length)
	assert.Equal(t, palette.MustFromName("white"), p.BackgroundColor)
	assert.Equal(t, palette.MustFromName("black"), p.X.LineStyle.Color)
}

func TestApplyBadColor(t *testing.T) {
	p := plot.New()
	st := Style{Background: "plaid"}
	assert.Error(t, st.Apply(p))
}

func TestCyclers(t *testing.T) {
	st := MustPreset("default")
	cc, err := st.ColorCycler()
	assert.NoError(t, err)
	assert.Equal(t, palette.MustFromName("blue"), cc.Next())

	dc, err := st.DashCycler()
	assert.NoError(t, err)
	assert.Nil(t, dc) // solid lines only by default

	st.DashCycle = []string{"solid", "dashed"}
	dc, err = st.DashCycler()
	assert.NoError(t, err)
	assert.NotNil(t, dc)
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".toml")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)

	f, err = ExtToFormat("yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = ExtToFormat(".ini")
	assert.Error(t, err)
}

func TestReadTOML(t *testing.T) {
	in := "FontSize = 9.0\nGrid = true\nBackground = '#fdbf6f'\n"
	st, err := Read(strings.NewReader(in), TOML)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, st.FontSize)
	assert.True(t, st.Grid)
	assert.Equal(t, "#fdbf6f", st.Background)
	assert.Equal(t, 12.0, st.TitleSize) // default kept
}

func TestReadYAML(t *testing.T) {
	in := "fontsize: 9\ncolorcycle: [red, blue]\n"
	st, err := Read(strings.NewReader(in), YAML)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, st.FontSize)
	assert.Equal(t, []string{"red", "blue"}, st.ColorCycle)
}

func TestReadJSON(t *testing.T) {
	in := `{"FontSize": 9, "Foreground": "grey"}`
	st, err := Read(strings.NewReader(in), JSON)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, st.FontSize)
	assert.Equal(t, "grey", st.Foreground)
}

func TestSaveOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st := MustPreset("poster")
	st.DashCycle = []string{"solid", "dashed"}
	for _, fn := range []string{"style.toml", "style.yaml", "style.json"} {
		path := filepath.Join(dir, fn)
		err := Save(&st, path)
		assert.NoError(t, err, fn)

		got, err := Open(path)
		assert.NoError(t, err, fn)
		assert.Equal(t, st, got, fn)
	}
}

func TestLoad(t *testing.T) {
	st, err := Load("paper")
	assert.NoError(t, err)
	assert.Equal(t, 8.0, st.FontSize)

	path := filepath.Join(t.TempDir(), "mine.toml")
	err = os.WriteFile(path, []byte("FontSize = 7.0\n"), 0666)
	assert.NoError(t, err)
	st, err = Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, st.FontSize)

	_, err = Load("not-a-preset")
	assert.Error(t, err)

	_, err = Load("missing.toml")
	assert.Error(t, err)
}
