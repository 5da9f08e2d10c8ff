package domain

import (
	"strings"

	"cogentcore.org/core/math32"
	"go.trai.ch/zerr"
)

// ComposeOrder selects how a transform node combines its local matrix with what flows through it.
type ComposeOrder uint8

const (
	// Premultiply composes local * previous, so the node acts in world space.
	Premultiply ComposeOrder = iota
	// Postmultiply composes previous * local, so the node acts in the object's own frame.
	Postmultiply
)

// ParseComposeOrder parses a compose order name. An empty string selects Premultiply.
func ParseComposeOrder(s string) (ComposeOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "premultiply":
		return Premultiply, nil
	case "postmultiply":
		return Postmultiply, nil
	default:
		return Premultiply, zerr.With(ErrInvalidComposeOrder, "compose_order", s)
	}
}

// String returns the configuration name of the order.
func (o ComposeOrder) String() string {
	if o == Postmultiply {
		return "postmultiply"
	}
	return "premultiply"
}

// Compose combines a node's local matrix with an accumulated object matrix.
func (o ComposeOrder) Compose(local, previous *math32.Matrix4) math32.Matrix4 {
	var out math32.Matrix4
	if o == Postmultiply {
		out.MulMatrices(previous, local)
	} else {
		out.MulMatrices(local, previous)
	}
	return out
}

// Identity returns the identity matrix.
func Identity() math32.Matrix4 {
	return *math32.Identity4()
}

// LocalTransform builds a translation * rotation * scale matrix.
// Rotation is given in degrees and applied in XYZ order.
func LocalTransform(pos, rotDeg math32.Vector3, scale float32) math32.Matrix4 {
	rad := math32.Vec3(
		math32.DegToRad(rotDeg.X),
		math32.DegToRad(rotDeg.Y),
		math32.DegToRad(rotDeg.Z),
	)
	var m math32.Matrix4
	m.SetTransform(pos, math32.NewQuatEuler(rad), math32.Vec3(scale, scale, scale))
	return m
}

// Translation returns the translation component of a matrix.
func Translation(m *math32.Matrix4) math32.Vector3 {
	return math32.Vec3(m[12], m[13], m[14])
}

// UpAxis names which model axis points up in an assembled scene.
type UpAxis string

const (
	// UpY is the renderer's native up axis.
	UpY UpAxis = "Y"
	// UpZ is used by most CAD and print tooling.
	UpZ UpAxis = "Z"
	// UpNegY is an upside-down Y-up model.
	UpNegY UpAxis = "-Y"
	// UpNegZ is an upside-down Z-up model.
	UpNegZ UpAxis = "-Z"
)

// ParseUpAxis parses an up direction setting. An empty string selects UpY.
func ParseUpAxis(s string) (UpAxis, error) {
	switch a := UpAxis(strings.ToUpper(strings.TrimSpace(s))); a {
	case "":
		return UpY, nil
	case UpY, UpZ, UpNegY, UpNegZ:
		return a, nil
	default:
		return UpY, zerr.With(ErrInvalidUpAxis, "up_direction", s)
	}
}

// Correction returns the rotation that maps the axis onto the renderer's +Y.
func (a UpAxis) Correction() math32.Matrix4 {
	var deg float32
	switch a {
	case UpZ:
		deg = -90
	case UpNegY:
		deg = 180
	case UpNegZ:
		deg = 90
	default:
		return Identity()
	}
	return LocalTransform(math32.Vector3{}, math32.Vec3(deg, 0, 0), 1)
}
