package player

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"VoxelVision/internal/camera"
	"VoxelVision/internal/physics"
	"VoxelVision/internal/util"
	"VoxelVision/internal/world"
)

// Constantes de movimento, em blocos e segundos.
const (
	Width     = 0.6
	Height    = 1.8
	EyeHeight = 1.6
	WalkSpeed = 5.3
	JumpSpeed = 8.0
	Gravity   = 30.0
	MaxFall   = 15.0 // velocidade terminal de queda
	Reach     = 6.0  // alcance da mira, em blocos
)

// World é o que o jogador precisa do mundo: colisão, mira e edição.
type World interface {
	physics.Obstacles
	physics.BlockField
	SetBlock(c util.BlockCoord, t world.BlockType) bool
}

// Intents são as intenções de um tick, já traduzidas de teclas/mouse pela
// camada de input. O jogador nunca lê input diretamente.
type Intents struct {
	Forward, Back float32 // 0 ou 1
	Left, Right   float32
	Jump          bool
	Breaking      bool // botão de quebrar segurado
	Place         bool // clique de colocar neste tick
	SelectSlot    int  // -1 = sem troca
}

// Player é o estado do jogador: posição dos pés, velocidade vertical,
// câmera presa aos olhos, hotbar e progresso de quebra.
type Player struct {
	Pos      rl.Vector3 // centro da base do AABB
	VelY     float32
	OnGround bool
	Camera   *camera.Camera

	Hotbar   []world.BlockType
	Selected int

	// Progresso de quebra do bloco sob a mira. Zera quando a mira muda de
	// bloco ou o botão é solto.
	breakTarget   util.BlockCoord
	breakProgress float32
	hasBreak      bool
}

// New cria um jogador na posição de spawn dada.
func New(spawn rl.Vector3, cam *camera.Camera) *Player {
	p := &Player{
		Pos:    spawn,
		Camera: cam,
		Hotbar: []world.BlockType{world.Log, world.Planks, world.Stone, world.Glass},
	}
	p.syncCamera()
	return p
}

// Box retorna o AABB atual do jogador.
func (p *Player) Box() physics.AABB {
	return physics.NewAABB(p.Pos, Width, Height)
}

// SelectedBlock retorna o bloco selecionado na hotbar.
func (p *Player) SelectedBlock() world.BlockType {
	return p.Hotbar[p.Selected]
}

// Target retorna o bloco sob a mira, se houver.
func (p *Player) Target(w World) (physics.RayHit, bool) {
	return physics.Raycast(p.Camera.Position, p.Camera.Forward(), Reach, w)
}

// BreakProgress retorna a fração concluída da quebra atual, em [0, 1].
func (p *Player) BreakProgress() float32 {
	if !p.hasBreak {
		return 0
	}
	return p.breakProgress
}

// Update avança o jogador um tick: movimento com colisão, depois as ações
// de quebra e colocação de bloco.
func (p *Player) Update(dt float32, in Intents, w World) {
	if in.SelectSlot >= 0 && in.SelectSlot < len(p.Hotbar) {
		p.Selected = in.SelectSlot
	}

	p.move(dt, in, w)
	p.applyActions(dt, in, w)
	p.syncCamera()
}

// move integra velocidade e resolve colisão eixo a eixo. A colisão trata
// colunas não geradas como sólidas; a velocidade terminal garante que
// mesmo um chunk muito atrasado segura o jogador sem tunelamento.
func (p *Player) move(dt float32, in Intents, w World) {
	forward := p.Camera.FlatForward()
	right := p.Camera.Right()

	mx := (in.Forward - in.Back)
	mz := (in.Right - in.Left)

	var vx, vz float32
	if mx != 0 || mz != 0 {
		dx := forward.X*mx + right.X*mz
		dz := forward.Z*mx + right.Z*mz
		// Normaliza para diagonal não ser mais rápida.
		if norm := sqrt32(dx*dx + dz*dz); norm > 0 {
			vx = dx / norm * WalkSpeed
			vz = dz / norm * WalkSpeed
		}
	}

	if in.Jump && p.OnGround {
		p.VelY = JumpSpeed
	}
	p.VelY -= Gravity * dt
	if p.VelY < -MaxFall {
		p.VelY = -MaxFall
	}

	delta := rl.Vector3{X: vx * dt, Y: p.VelY * dt, Z: vz * dt}
	resolved := physics.Resolve(p.Box(), delta, w)

	p.Pos.X += resolved.X
	p.Pos.Y += resolved.Y
	p.Pos.Z += resolved.Z

	// Bloqueio vertical zera a velocidade; bloqueio para baixo é chão.
	p.OnGround = delta.Y < 0 && resolved.Y > delta.Y
	if resolved.Y != delta.Y {
		p.VelY = 0
	}
}

// applyActions processa quebra (progresso acumulado contra o tempo de
// quebra do bloco) e colocação (célula adjacente à face mirada, nunca
// dentro do próprio jogador).
func (p *Player) applyActions(dt float32, in Intents, w World) {
	hit, ok := p.Target(w)

	if !in.Breaking || !ok {
		p.hasBreak = false
		p.breakProgress = 0
	} else {
		if !p.hasBreak || !hit.Block.Equals(p.breakTarget) {
			p.hasBreak = true
			p.breakTarget = hit.Block
			p.breakProgress = 0
		}

		bt := w.BlockAt(hit.Block).BreakTime()
		if bt > 0 {
			p.breakProgress += dt / bt
		} else {
			p.breakProgress = 1
		}
		if p.breakProgress >= 1 {
			w.SetBlock(hit.Block, world.Air)
			p.hasBreak = false
			p.breakProgress = 0
		}
	}

	if in.Place && ok {
		cell := hit.Adjacent()
		if w.BlockAt(cell) == world.Air && !p.occupies(cell) {
			w.SetBlock(cell, p.SelectedBlock())
		}
	}
}

// occupies indica se a célula de bloco cruza o AABB do jogador.
func (p *Player) occupies(c util.BlockCoord) bool {
	box := p.Box()
	return float32(c.X)+1 > box.Min.X && float32(c.X) < box.Max.X &&
		float32(c.Y)+1 > box.Min.Y && float32(c.Y) < box.Max.Y &&
		float32(c.Z)+1 > box.Min.Z && float32(c.Z) < box.Max.Z
}

// syncCamera prende a câmera aos olhos.
func (p *Player) syncCamera() {
	p.Camera.Position = rl.Vector3{X: p.Pos.X, Y: p.Pos.Y + EyeHeight, Z: p.Pos.Z}
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}
