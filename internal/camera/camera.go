package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera é a câmera em primeira pessoa presa aos olhos do jogador.
// Yaw e Pitch são em graus: yaw 0 olha para -Z (norte), yaw cresce para a
// direita; pitch positivo olha para cima.
type Camera struct {
	Position rl.Vector3
	Yaw      float32
	Pitch    float32
	FOV      float32
}

// New cria uma câmera com o campo de visão dado.
func New(fov float32) *Camera {
	return &Camera{FOV: fov}
}

// Rotate aplica o delta do mouse (já multiplicado pela sensibilidade) e
// trava o pitch antes da vertical para o vetor "up" nunca degenerar.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch -= dPitch

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Forward retorna o vetor unitário da direção do olhar.
func (c *Camera) Forward() rl.Vector3 {
	yaw := float64(c.Yaw * rl.Deg2rad)
	pitch := float64(c.Pitch * rl.Deg2rad)

	cosP := float32(math.Cos(pitch))
	return rl.Vector3{
		X: float32(math.Sin(yaw)) * cosP,
		Y: float32(math.Sin(pitch)),
		Z: -float32(math.Cos(yaw)) * cosP,
	}
}

// FlatForward retorna a direção do olhar projetada no plano do chão,
// normalizada. É a base do movimento: olhar para cima não anda para cima.
func (c *Camera) FlatForward() rl.Vector3 {
	f := c.Forward()
	flat := mgl32.Vec3{f.X, 0, f.Z}
	if flat.Len() == 0 {
		// Pitch travado em 89 graus nunca deixa chegar aqui, mas o
		// fallback evita NaN se o clamp mudar.
		yaw := float64(c.Yaw * rl.Deg2rad)
		return rl.Vector3{X: float32(math.Sin(yaw)), Z: -float32(math.Cos(yaw))}
	}
	flat = flat.Normalize()
	return rl.Vector3{X: flat.X(), Z: flat.Z()}
}

// Right retorna o vetor unitário para a direita do olhar, no plano do chão.
func (c *Camera) Right() rl.Vector3 {
	f := c.FlatForward()
	right := mgl32.Vec3{f.X, 0, f.Z}.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	return rl.Vector3{X: right.X(), Z: right.Z()}
}

// RLCamera monta a câmera do raylib para o frame atual.
func (c *Camera) RLCamera() rl.Camera3D {
	f := c.Forward()
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3{X: c.Position.X + f.X, Y: c.Position.Y + f.Y, Z: c.Position.Z + f.Z},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
