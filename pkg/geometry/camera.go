package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ErrInvalidCamera is returned for camera configurations that cannot produce a valid basis or projection
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig describes a thin-lens camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter (0 = pinhole)
	FocusDistance float64   // Distance to the plane in perfect focus
}

// Validate reports the first problem with the configuration, if any
func (c CameraConfig) Validate() error {
	w := c.LookFrom.Subtract(c.LookAt)
	switch {
	case w.LengthSquared() == 0:
		return fmt.Errorf("%w: lookFrom and lookAt coincide at %v", ErrInvalidCamera, c.LookFrom)
	case mgl64.FloatEqualThreshold(c.Up.Normalize().Cross(w.Normalize()).Length(), 0, 1e-9):
		return fmt.Errorf("%w: up %v is parallel to the view direction", ErrInvalidCamera, c.Up)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vfov %g must be in (0, 180)", ErrInvalidCamera, c.VFov)
	case !(c.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio %g must be positive", ErrInvalidCamera, c.AspectRatio)
	case !(c.Aperture >= 0):
		return fmt.Errorf("%w: aperture %g must be non-negative", ErrInvalidCamera, c.Aperture)
	case !(c.FocusDistance > 0):
		return fmt.Errorf("%w: focus distance %g must be positive", ErrInvalidCamera, c.FocusDistance)
	}
	return nil
}

// Camera generates rays through a focus-plane rectangle from a jittered lens position
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis: right, up, backward
	lensRadius      float64
}

// NewCamera creates a thin-lens camera from the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	theta := mgl64.DegToRad(config.VFov)
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focus := config.FocusDistance
	horizontal := u.Multiply(2 * halfWidth * focus)
	vertical := v.Multiply(2 * halfHeight * focus)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focus))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for image-plane coordinates (s, t) where 0 <= s,t <= 1.
// (0,0) is the lower-left corner of the image. One 2D sample is drawn for the lens.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	origin := c.origin.Add(offset)
	return core.NewRay(origin, target.Subtract(origin))
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}
