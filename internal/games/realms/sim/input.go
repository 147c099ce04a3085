package sim

// Input is one frame of sampled controls.
// Movement, Jump and PointerDown are held states; ToggleWeapon is an edge
// (true only on the frame the key went down).
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool

	ToggleWeapon bool

	PointerDown bool
	PointerX    float64 // World units
	PointerY    float64
}
