package ui

import (
	"fmt"

	"life-canvas/pkg/sims/life"
)

const controlsHelp = "Controls:\n" +
	"Space: Play/Pause | C: Clear | Mouse Wheel: Zoom\n" +
	"Middle Mouse: Pan | 1-3, Tab: Draw modes\n" +
	"N: Step | R: Random soup | Q: Quit"

// StatusText renders the HUD text for a simulation snapshot.
func StatusText(st life.Status) string {
	state := "Running"
	if st.Paused {
		state = "Paused"
	}
	return fmt.Sprintf("%s\n\nMode: %s | %s | Cells: %d\nGeneration: %d",
		controlsHelp, st.Mode, state, st.Alive, st.Generation)
}
