package mat

// Orthographic maps the box [0, width] x [0, height] to clip space with the
// origin at the bottom left.
//
// The depth terms are -2/(far-near) and -(far+near)/(far-near) with the
// arguments used as given. Camera passes far=-1, near=1, which makes cell
// (2, 2) equal +1; callers rely on that order, so it is not normalized here.
func Orthographic(width, height int, far, near float32) Mat4 {
	var left, bottom float32
	right := float32(width)
	top := float32(height)
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
