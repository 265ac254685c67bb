package main

import (
	"flag"
	"time"

	"room-renderer/core"
	"room-renderer/internal/opengl"
	"room-renderer/math"
	"room-renderer/scene"
)

func main() {
	configPath := flag.String("config", "viewer.toml", "path to the viewer config")
	flag.Parse()

	config, err := core.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal("failed to load config", "error", err)
	}
	core.SetLogLevel(config.LogLevel)

	if err := run(config); err != nil {
		core.LogFatal("viewer failed", "error", err)
	}
}

func run(config core.Config) error {
	window, err := core.NewWindow(config)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := opengl.Init(); err != nil {
		return err
	}

	program, err := opengl.NewProgram()
	if err != nil {
		return err
	}
	defer program.Destroy()
	program.Use()

	meshes := opengl.NewMeshStore()
	defer meshes.Destroy()

	manager := scene.NewSceneManager(program, meshes, opengl.NewTextureUploader())
	defer manager.Destroy()

	if err := manager.Prepare(config.TextureDir); err != nil {
		return err
	}

	width, height := window.GetFramebufferSize()
	camera := scene.NewCamera(math.NewVec3(0, 5.5, 9), config.Camera.FieldOfView,
		float32(width)/float32(height))

	controller := newCameraController(window, camera, config.Camera)
	clearColor := core.NewColor(0.1, 0.1, 0.1, 1)

	lastTime := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			window.Close()
		}
		controller.Update(dt)

		width, height := window.GetFramebufferSize()
		camera.UpdateAspectRatio(float32(width), float32(height))
		opengl.BeginFrame(width, height, clearColor)

		program.SetMat4("view", camera.ViewMatrix())
		program.SetMat4("projection", camera.ProjectionMatrix())
		program.SetVec3("viewPosition", camera.Position)

		if err := manager.Render(); err != nil {
			return err
		}

		window.SwapBuffers()
	}
	return nil
}

// cameraController maps keyboard and mouse input onto the fly camera: WASD
// moves, Q/E change height, and holding the left mouse button looks around.
type cameraController struct {
	window *core.Window
	camera *scene.Camera
	config core.CameraConfig

	lastCursorX float64
	lastCursorY float64
	dragging    bool
}

func newCameraController(window *core.Window, camera *scene.Camera, config core.CameraConfig) *cameraController {
	return &cameraController{
		window: window,
		camera: camera,
		config: config,
	}
}

func (c *cameraController) Update(dt float32) {
	step := c.config.MoveSpeed * dt
	forward := c.camera.Forward()
	right := c.camera.Right()

	var delta math.Vec3
	if c.window.IsKeyPressed(core.KeyW) {
		delta = delta.Add(forward.Mul(step))
	}
	if c.window.IsKeyPressed(core.KeyS) {
		delta = delta.Sub(forward.Mul(step))
	}
	if c.window.IsKeyPressed(core.KeyD) {
		delta = delta.Add(right.Mul(step))
	}
	if c.window.IsKeyPressed(core.KeyA) {
		delta = delta.Sub(right.Mul(step))
	}
	if c.window.IsKeyPressed(core.KeyE) {
		delta = delta.Add(math.Vec3Up.Mul(step))
	}
	if c.window.IsKeyPressed(core.KeyQ) {
		delta = delta.Sub(math.Vec3Up.Mul(step))
	}
	c.camera.Translate(delta)

	x, y := c.window.GetCursorPos()
	if c.window.IsMouseButtonPressed(core.MouseButtonLeft) {
		if c.dragging {
			deltaYaw := float32(x-c.lastCursorX) * c.config.LookSpeed
			deltaPitch := float32(c.lastCursorY-y) * c.config.LookSpeed
			c.camera.Rotate(deltaYaw, deltaPitch)
		}
		c.dragging = true
	} else {
		c.dragging = false
	}
	c.lastCursorX = x
	c.lastCursorY = y
}
