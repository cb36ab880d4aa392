package shadows4d

// Pose is a tracked controller sample: world position and euler angles in degrees.
type Pose struct {
	Position Vector3
	Euler    Vector3
}

// GestureState is one of Idle, Grabbing or Selecting.
type GestureState interface {
	gesture()
}

// Idle: no button held.
type Idle struct{}

// Grabbing: the trigger is held. Target is nil when the trigger was pressed
// away from every shape; the hand stays empty until it is released.
type Grabbing struct {
	Target Shape
}

// Selecting: the grip is held on a 4D shape (or on nothing).
type Selecting struct {
	Target *Shape4D
}

func (Idle) gesture()      {}
func (Grabbing) gesture()  {}
func (Selecting) gesture() {}

// Controller turns a stream of poses and button states into shape
// manipulations. Grabbing moves and turns a shape with the hand, 4D shapes
// included: their twist stays in the planes of x, y and z. Selecting a 4D
// shape turns it through the planes that involve w by moving the hand.
// Releasing either commits the shape's new rest pose.
type Controller struct {
	Registry *Registry
	Reach    Real

	state       GestureState
	startOffset Vector3 // shape center minus hand position at grab time
	startEuler  Vector3
	startPos    Vector3
}

func NewController(reg *Registry) *Controller {
	return &Controller{Registry: reg, Reach: GrabRange, state: Idle{}}
}

func (c *Controller) State() GestureState { return c.state }

// Update advances the state machine by one sample. Grab and select are
// mutually exclusive: whichever starts first wins until it is released.
func (c *Controller) Update(p Pose, activate, sel bool) GestureState {
	switch st := c.state.(type) {
	case Idle:
		switch {
		case activate:
			c.state = c.grab(p)
		case sel:
			c.state = c.sel(p)
		}
	case Grabbing:
		if !activate {
			if st.Target != nil {
				st.Target.Commit()
			}
			c.state = Idle{}
			break
		}
		c.grabbing(st.Target, p)
	case Selecting:
		if !sel {
			if st.Target != nil {
				st.Target.Commit()
			}
			c.state = Idle{}
			break
		}
		c.selecting(st.Target, p)
	}
	return c.state
}

// grab picks the first active 3D shape within reach, then the first active
// 4D shape whose shadow box holds the hand.
func (c *Controller) grab(p Pose) Grabbing {
	for _, s := range c.Registry.Active3D() {
		if s.Reaches(p.Position, c.Reach) {
			c.startOffset = s.Center().Sub(p.Position)
			c.startEuler = p.Euler
			DebugLog("Grabbed 3D shape %q", s.Name())
			return Grabbing{Target: s}
		}
	}
	for _, s := range c.Registry.Active4D() {
		if s.Hit(p.Position) {
			c.startOffset = s.Center().XYZ().Sub(p.Position)
			c.startEuler = p.Euler
			DebugLog("Grabbed 4D shape %q", s.Name())
			return Grabbing{Target: s}
		}
	}
	return Grabbing{}
}

func (c *Controller) sel(p Pose) Selecting {
	for _, s := range c.Registry.Active4D() {
		if s.Hit(p.Position) {
			c.startPos = p.Position
			DebugLog("Selected 4D shape %q", s.Name())
			return Selecting{Target: s}
		}
	}
	return Selecting{}
}

func (c *Controller) grabbing(target Shape, p Pose) {
	d := p.Euler.Sub(c.startEuler).Mul(1 / EulerGain)
	delta := Rot3{d.X, d.Y, d.Z}
	offset := Rotation3D(delta).MulVec(c.startOffset)
	to := p.Position.Add(offset)
	switch s := target.(type) {
	case *Shape3D:
		s.Translate(to)
		s.Rotate(delta)
	case *Shape4D:
		// same twist as a 3D shape; w is left alone
		s.Translate(to.WithW(s.Center().W))
		s.rotateBy(embed3(Rotation3D(delta)))
	}
}

func (c *Controller) selecting(s *Shape4D, p Pose) {
	if s == nil {
		return
	}
	d := p.Position.Sub(c.startPos).Mul(s.Scale() * SelectGain)
	s.rotateBy(selectRotation(d))
}

// selectRotation maps hand travel to the three planes involving w:
// x drives xw, y drives yw, z drives zw (applied in that order).
func selectRotation(d Vector3) Mat4 {
	return rotZW(d.Z).Mul(rotYW(d.Y)).Mul(rotXW(d.X))
}
