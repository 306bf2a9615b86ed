package terminal

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

// Fade endpoints of a falling heart.
const (
	startOpacity = 1.0
	endOpacity   = 0.7
)

var heartRGB = [3]float64{168, 85, 247}

// fallFrame places a particle at now on a screen with rows rows. The heart
// starts one row above the top and ends one row below the bottom, moving
// linearly over its fall duration once its start delay has passed.
// visible is false while the heart is off-screen.
func fallFrame(p model.Particle, now time.Time, rows int) (row int, opacity float64, visible bool) {
	delay := time.Duration(p.StartDelaySeconds * float64(time.Second))
	fall := time.Duration(p.FallDurationSeconds * float64(time.Second))

	elapsed := now.Sub(p.EmittedAt) - delay
	if elapsed < 0 || fall <= 0 || rows <= 0 {
		return -1, startOpacity, false
	}

	progress := math.Min(float64(elapsed)/float64(fall), 1)
	row = int(math.Floor(-1 + progress*float64(rows+1)))
	opacity = startOpacity - (startOpacity-endOpacity)*progress

	return row, opacity, row >= 0 && row < rows
}

// column maps a horizontal position in percent to a screen column.
func column(p model.Particle, cols int) int {
	col := int(p.HorizontalPosition / 100 * float64(cols))
	if col >= cols {
		col = cols - 1
	}
	if col < 0 {
		col = 0
	}
	return col
}

// heartStyle returns the heart colour dimmed to opacity.
func heartStyle(opacity float64) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(heartRGB[0]*opacity),
		int32(heartRGB[1]*opacity),
		int32(heartRGB[2]*opacity),
	))
}
