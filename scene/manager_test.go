package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-renderer/math"
)

type fakeShader struct {
	mat4s    map[string]math.Mat4
	vec4s    map[string]math.Vec4
	vec3s    map[string]math.Vec3
	vec2s    map[string]math.Vec2
	floats   map[string]float32
	bools    map[string]bool
	samplers map[string]int
	events   []string
}

func newFakeShader() *fakeShader {
	return &fakeShader{
		mat4s:    make(map[string]math.Mat4),
		vec4s:    make(map[string]math.Vec4),
		vec3s:    make(map[string]math.Vec3),
		vec2s:    make(map[string]math.Vec2),
		floats:   make(map[string]float32),
		bools:    make(map[string]bool),
		samplers: make(map[string]int),
	}
}

func (f *fakeShader) SetMat4(name string, m math.Mat4) {
	f.mat4s[name] = m
	f.events = append(f.events, "mat4:"+name)
}

func (f *fakeShader) SetVec4(name string, v math.Vec4) {
	f.vec4s[name] = v
	f.events = append(f.events, "vec4:"+name)
}

func (f *fakeShader) SetVec3(name string, v math.Vec3) {
	f.vec3s[name] = v
}

func (f *fakeShader) SetVec2(name string, v math.Vec2) {
	f.vec2s[name] = v
}

func (f *fakeShader) SetFloat(name string, value float32) {
	f.floats[name] = value
}

func (f *fakeShader) SetBool(name string, value bool) {
	f.bools[name] = value
	f.events = append(f.events, fmt.Sprintf("bool:%s=%t", name, value))
}

func (f *fakeShader) SetSampler(name string, slot int) {
	f.samplers[name] = slot
	f.events = append(f.events, fmt.Sprintf("sampler:%s=%d", name, slot))
}

type fakeDrawer struct {
	loaded []ShapeType
	draws  []ShapeType
}

func (f *fakeDrawer) LoadShape(shape ShapeType) error {
	f.loaded = append(f.loaded, shape)
	return nil
}

func (f *fakeDrawer) Draw(shape ShapeType) {
	f.draws = append(f.draws, shape)
}

type fakeUploader struct {
	uploads  []string
	binds    []string
	releases []string
}

func (f *fakeUploader) Upload(texture *Texture) error {
	texture.Handle = uint32(len(f.uploads) + 1)
	f.uploads = append(f.uploads, texture.Tag)
	return nil
}

func (f *fakeUploader) Bind(texture *Texture) {
	f.binds = append(f.binds, texture.Tag)
}

func (f *fakeUploader) Release(texture *Texture) {
	f.releases = append(f.releases, texture.Tag)
	texture.Handle = 0
}

// writeTestImage writes a small RGBA PNG to dir and returns its file name.
func writeTestImage(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	file, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
	return name
}

func testScene(t *testing.T) (*SceneManager, *fakeShader, *fakeDrawer, *fakeUploader, string) {
	t.Helper()
	shader := newFakeShader()
	drawer := &fakeDrawer{}
	uploader := &fakeUploader{}
	dir := t.TempDir()
	writeTestImage(t, dir, "crate.png")
	writeTestImage(t, dir, "felt.png")
	return NewSceneManager(shader, drawer, uploader), shader, drawer, uploader, dir
}

func prepareTestScene(t *testing.T, manager *SceneManager, dir string, objects []Object) {
	t.Helper()
	require.NoError(t, manager.LoadTextures(dir, []TextureSpec{
		{File: "crate.png", Tag: "crate"},
		{File: "felt.png", Tag: "felt"},
	}))
	require.NoError(t, manager.DefineMaterials([]Material{
		{Tag: "wood", Shininess: 0.3, DiffuseColor: math.NewVec3(0.3, 0.3, 0.3)},
	}))
	require.NoError(t, manager.ConfigureLights([]LightSource{
		{Position: math.NewVec3(-4, 2, 0), DiffuseColor: math.NewVec3(1, 1, 1), Constant: 1},
	}))
	require.NoError(t, manager.LoadMeshes(objects))
	manager.phase = PhaseReady
}

func TestSceneManagerPhaseOrder(t *testing.T) {
	manager, _, _, _, _ := testScene(t)

	// Materials cannot be defined before textures are loaded.
	err := manager.DefineMaterials([]Material{{Tag: "wood"}})
	assert.Error(t, err)
	assert.Equal(t, PhaseUninitialized, manager.Phase())
}

func TestSceneManagerRenderBeforeReady(t *testing.T) {
	manager, _, _, _, _ := testScene(t)
	assert.Error(t, manager.Render())
}

func TestLoadTexturesSkipsMissingFiles(t *testing.T) {
	manager, _, _, uploader, dir := testScene(t)

	require.NoError(t, manager.LoadTextures(dir, []TextureSpec{
		{File: "crate.png", Tag: "crate"},
		{File: "does_not_exist.png", Tag: "ghost"},
	}))

	assert.Equal(t, []string{"crate"}, uploader.uploads)
	assert.Equal(t, []string{"crate"}, uploader.binds)
	assert.Equal(t, -1, manager.Textures().Slot("ghost"))
	assert.Equal(t, PhaseTexturesLoaded, manager.Phase())
}

func TestConfigureLightsUploadsUniforms(t *testing.T) {
	manager, shader, _, _, dir := testScene(t)

	require.NoError(t, manager.LoadTextures(dir, nil))
	require.NoError(t, manager.DefineMaterials(nil))
	require.NoError(t, manager.ConfigureLights([]LightSource{
		{
			Position:          math.NewVec3(-4, 2, 0),
			DiffuseColor:      math.NewVec3(1, 1, 1),
			FocalStrength:     16,
			SpecularIntensity: 0.03,
			Constant:          1,
			Linear:            0.01,
		},
	}))

	assert.Equal(t, math.NewVec3(-4, 2, 0), shader.vec3s["lightSources[0].position"])
	assert.Equal(t, math.NewVec3(1, 1, 1), shader.vec3s["lightSources[0].diffuseColor"])
	assert.Equal(t, float32(16), shader.floats["lightSources[0].focalStrength"])
	assert.Equal(t, float32(0.01), shader.floats["lightSources[0].linear"])
	assert.True(t, shader.bools["bUseLighting"])
}

func TestConfigureLightsRejectsOverflow(t *testing.T) {
	manager, _, _, _, dir := testScene(t)

	require.NoError(t, manager.LoadTextures(dir, nil))
	require.NoError(t, manager.DefineMaterials(nil))
	assert.Error(t, manager.ConfigureLights(make([]LightSource, MaxLights+1)))
}

func TestLoadMeshesDeduplicatesShapes(t *testing.T) {
	manager, _, drawer, _, dir := testScene(t)

	objects := []Object{
		{Shape: ShapeBox}, {Shape: ShapeBox}, {Shape: ShapeCylinder},
	}
	require.NoError(t, manager.LoadTextures(dir, nil))
	require.NoError(t, manager.DefineMaterials(nil))
	require.NoError(t, manager.ConfigureLights(nil))
	require.NoError(t, manager.LoadMeshes(objects))

	assert.Equal(t, []ShapeType{ShapeBox, ShapeCylinder}, drawer.loaded)
}

func TestRenderTexturedObject(t *testing.T) {
	manager, shader, drawer, _, dir := testScene(t)
	objects := []Object{
		{
			Shape:       ShapeBox,
			Scale:       math.Vec3One,
			Appearance:  TexturedScaled("felt", 10, 10),
			MaterialTag: "wood",
		},
	}
	prepareTestScene(t, manager, dir, objects)

	require.NoError(t, manager.Render())

	assert.Equal(t, []ShapeType{ShapeBox}, drawer.draws)
	assert.True(t, shader.bools["bUseTexture"])
	assert.Equal(t, 1, shader.samplers["objectTexture"])
	assert.Equal(t, math.NewVec2(10, 10), shader.vec2s["UVscale"])
	assert.Equal(t, math.NewVec3(0.3, 0.3, 0.3), shader.vec3s["material.diffuseColor"])
	assert.Equal(t, float32(0.3), shader.floats["material.shininess"])
}

func TestRenderFlatColorObject(t *testing.T) {
	manager, shader, drawer, _, dir := testScene(t)
	objects := []Object{
		{
			Shape:       ShapeCone,
			Scale:       math.Vec3One,
			Appearance:  FlatColor(1, 0, 1, 1),
			MaterialTag: "wood",
		},
	}
	prepareTestScene(t, manager, dir, objects)

	require.NoError(t, manager.Render())

	assert.Equal(t, []ShapeType{ShapeCone}, drawer.draws)
	assert.False(t, shader.bools["bUseTexture"])
	assert.Equal(t, math.NewVec4(1, 0, 1, 1), shader.vec4s["objectColor"])
}

func TestRenderUnknownTextureFallsBack(t *testing.T) {
	manager, shader, _, _, dir := testScene(t)
	objects := []Object{
		{
			Shape:       ShapeBox,
			Scale:       math.Vec3One,
			Appearance:  Textured("missing"),
			MaterialTag: "wood",
		},
	}
	prepareTestScene(t, manager, dir, objects)

	require.NoError(t, manager.Render())

	assert.False(t, shader.bools["bUseTexture"])
	assert.Equal(t, math.NewVec4(1, 1, 1, 1), shader.vec4s["objectColor"])
}

func TestRenderUnknownMaterialUsesNeutral(t *testing.T) {
	manager, shader, _, _, dir := testScene(t)
	objects := []Object{
		{
			Shape:       ShapeBox,
			Scale:       math.Vec3One,
			Appearance:  FlatColor(1, 1, 1, 1),
			MaterialTag: "missing",
		},
	}
	prepareTestScene(t, manager, dir, objects)

	require.NoError(t, manager.Render())

	assert.Equal(t, neutralMaterial.DiffuseColor, shader.vec3s["material.diffuseColor"])
}

func TestRenderMixedAppearances(t *testing.T) {
	manager, shader, _, _, dir := testScene(t)
	objects := []Object{
		{Shape: ShapeBox, Scale: math.Vec3One, Appearance: FlatColor(1, 0, 0, 1), MaterialTag: "wood"},
		{Shape: ShapeBox, Scale: math.Vec3One, Appearance: Textured("felt"), MaterialTag: "wood"},
	}
	prepareTestScene(t, manager, dir, objects)

	require.NoError(t, manager.Render())

	// Each draw sets its own mode; the textured object wins last.
	assert.Contains(t, shader.events, "bool:bUseTexture=false")
	assert.True(t, shader.bools["bUseTexture"])
	assert.Equal(t, 1, shader.samplers["objectTexture"])
}

func TestPrepareWalksAllPhases(t *testing.T) {
	shader := newFakeShader()
	drawer := &fakeDrawer{}
	uploader := &fakeUploader{}
	manager := NewSceneManager(shader, drawer, uploader)

	// No texture files exist; every load is tolerated and the scene still
	// reaches the ready phase.
	require.NoError(t, manager.Prepare(t.TempDir()))
	assert.Equal(t, PhaseReady, manager.Phase())
	assert.Len(t, manager.Objects(), 62)
	assert.True(t, shader.bools["bUseLighting"])
	assert.ElementsMatch(t, drawer.loaded,
		[]ShapeType{ShapePlane, ShapeBox, ShapeCylinder, ShapeCone})
	assert.NoError(t, manager.Render())
}

func TestRenderDrawOrder(t *testing.T) {
	manager, _, drawer, _, dir := testScene(t)
	objects := []Object{
		{Shape: ShapePlane, Scale: math.Vec3One, Appearance: FlatColor(1, 1, 1, 1), MaterialTag: "wood"},
		{Shape: ShapeBox, Scale: math.Vec3One, Appearance: FlatColor(1, 1, 1, 1), MaterialTag: "wood"},
		{Shape: ShapeCylinder, Scale: math.Vec3One, Appearance: FlatColor(1, 1, 1, 1), MaterialTag: "wood"},
	}
	prepareTestScene(t, manager, dir, objects)

	require.NoError(t, manager.Render())
	assert.Equal(t, []ShapeType{ShapePlane, ShapeBox, ShapeCylinder}, drawer.draws)
}

func TestRenderUploadsModelMatrix(t *testing.T) {
	manager, shader, _, _, dir := testScene(t)
	objects := []Object{
		{
			Shape:       ShapeBox,
			Scale:       math.Vec3One,
			Position:    math.NewVec3(1, 2, 3),
			Appearance:  FlatColor(1, 1, 1, 1),
			MaterialTag: "wood",
		},
	}
	prepareTestScene(t, manager, dir, objects)

	require.NoError(t, manager.Render())

	model := shader.mat4s["model"]
	assert.Equal(t, math.NewVec3(1, 2, 3), model.MulVec3(math.Vec3Zero))
}

func TestDestroyReleasesTextures(t *testing.T) {
	manager, _, _, uploader, dir := testScene(t)
	prepareTestScene(t, manager, dir, nil)

	manager.Destroy()

	assert.ElementsMatch(t, []string{"crate", "felt"}, uploader.releases)
	assert.Equal(t, PhaseUninitialized, manager.Phase())
	assert.Equal(t, 0, manager.Textures().Len())
}
