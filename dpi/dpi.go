// Package dpi contains size and position types in physical (device pixel)
// and logical (scale independent) units.
package dpi

import "golang.org/x/exp/constraints"

type numeric interface {
	constraints.Integer | constraints.Float
}

type PhysicalSize[T numeric] struct {
	Width  T
	Height T
}

type LogicalSize[T numeric] struct {
	Width  T
	Height T
}

type PhysicalPosition[T numeric] struct {
	X T
	Y T
}

type LogicalPosition[T numeric] struct {
	X T
	Y T
}

func NewPhysicalSize[T numeric](width, height T) PhysicalSize[T] {
	return PhysicalSize[T]{Width: width, Height: height}
}

func NewPhysicalPosition[T numeric](x, y T) PhysicalPosition[T] {
	return PhysicalPosition[T]{X: x, Y: y}
}

// Aspect returns width / height, or zero if the height is zero.
func (s PhysicalSize[T]) Aspect() float64 {
	if s.Height == 0 {
		return 0
	}

	return float64(s.Width) / float64(s.Height)
}

func (s PhysicalSize[T]) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

func (s PhysicalSize[T]) WH() (width, height T) {
	width = s.Width
	height = s.Height
	return
}

// ToLogical divides the size by the given scale factor.
func (s PhysicalSize[T]) ToLogical(scaleFactor float64) LogicalSize[float64] {
	if !validScale(scaleFactor) {
		return LogicalSize[float64]{}
	}

	return LogicalSize[float64]{
		Width:  float64(s.Width) / scaleFactor,
		Height: float64(s.Height) / scaleFactor,
	}
}

func (s LogicalSize[T]) ToPhysical(scaleFactor float64) PhysicalSize[float64] {
	return PhysicalSize[float64]{
		Width:  float64(s.Width) * scaleFactor,
		Height: float64(s.Height) * scaleFactor,
	}
}

func (p PhysicalPosition[T]) XY() (x, y T) {
	x = p.X
	y = p.Y
	return
}

func (p PhysicalPosition[T]) ToLogical(scaleFactor float64) LogicalPosition[float64] {
	if !validScale(scaleFactor) {
		return LogicalPosition[float64]{}
	}

	return LogicalPosition[float64]{
		X: float64(p.X) / scaleFactor,
		Y: float64(p.Y) / scaleFactor,
	}
}

func (p LogicalPosition[T]) ToPhysical(scaleFactor float64) PhysicalPosition[float64] {
	return PhysicalPosition[float64]{
		X: float64(p.X) * scaleFactor,
		Y: float64(p.Y) * scaleFactor,
	}
}

// Cast converts a size to a different numeric type. Values are truncated
// when converting from float to integer types.
func Cast[R, T numeric](s PhysicalSize[T]) PhysicalSize[R] {
	return PhysicalSize[R]{
		Width:  R(s.Width),
		Height: R(s.Height),
	}
}

func validScale(scaleFactor float64) bool {
	// also rejects NaN
	return scaleFactor > 0
}
