package scene

import (
	"fmt"
	"path/filepath"

	"room-renderer/core"
	"room-renderer/math"
)

// ShaderBinder sets uniforms on the active shader program.
type ShaderBinder interface {
	SetMat4(name string, m math.Mat4)
	SetVec4(name string, v math.Vec4)
	SetVec3(name string, v math.Vec3)
	SetVec2(name string, v math.Vec2)
	SetFloat(name string, value float32)
	SetBool(name string, value bool)
	SetSampler(name string, slot int)
}

// MeshDrawer owns the GPU-side geometry for the built-in shapes.
type MeshDrawer interface {
	LoadShape(shape ShapeType) error
	Draw(shape ShapeType)
}

// TextureUploader moves decoded textures to the GPU and binds them to
// texture units.
type TextureUploader interface {
	Upload(texture *Texture) error
	Bind(texture *Texture)
	Release(texture *Texture)
}

// Phase tracks how far scene preparation has progressed. The stages run in a
// fixed order and Render requires PhaseReady.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseTexturesLoaded
	PhaseMaterialsDefined
	PhaseLightsConfigured
	PhaseMeshesLoaded
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseTexturesLoaded:
		return "textures loaded"
	case PhaseMaterialsDefined:
		return "materials defined"
	case PhaseLightsConfigured:
		return "lights configured"
	case PhaseMeshesLoaded:
		return "meshes loaded"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// TextureSpec names an image file and the tag it is registered under.
type TextureSpec struct {
	File string
	Tag  string
}

// SceneManager prepares and renders a declarative scene: texture and
// material registries, a fixed light rig, and an ordered object list drawn
// every frame.
type SceneManager struct {
	shader   ShaderBinder
	drawer   MeshDrawer
	uploader TextureUploader

	textures  *TextureRegistry
	materials *MaterialRegistry
	lights    []LightSource
	objects   []Object

	phase Phase
}

func NewSceneManager(shader ShaderBinder, drawer MeshDrawer, uploader TextureUploader) *SceneManager {
	return &SceneManager{
		shader:    shader,
		drawer:    drawer,
		uploader:  uploader,
		textures:  NewTextureRegistry(),
		materials: NewMaterialRegistry(),
	}
}

// Prepare runs every setup stage in order using the built-in room scene.
// Texture files are resolved relative to textureDir.
func (s *SceneManager) Prepare(textureDir string) error {
	if err := s.LoadTextures(textureDir, RoomTextures()); err != nil {
		return err
	}
	if err := s.DefineMaterials(RoomMaterials()); err != nil {
		return err
	}
	if err := s.ConfigureLights(RoomLights()); err != nil {
		return err
	}
	if err := s.LoadMeshes(RoomObjects()); err != nil {
		return err
	}
	s.phase = PhaseReady
	core.LogInfo("scene ready",
		"textures", s.textures.Len(),
		"materials", s.materials.Len(),
		"lights", len(s.lights),
		"objects", len(s.objects))
	return nil
}

// LoadTextures decodes, registers, uploads, and binds the listed textures.
// A file that fails to decode is logged and skipped; the scene renders those
// objects untextured. Duplicate tags and registry overflow abort.
func (s *SceneManager) LoadTextures(dir string, specs []TextureSpec) error {
	if s.phase != PhaseUninitialized {
		return fmt.Errorf("textures already loaded (phase %s)", s.phase)
	}

	for _, spec := range specs {
		texture, err := LoadTexture(filepath.Join(dir, spec.File), spec.Tag)
		if err != nil {
			core.LogWarn("skipping texture", "tag", spec.Tag, "error", err)
			continue
		}
		if err := s.textures.Add(texture); err != nil {
			return err
		}
	}

	if err := s.textures.BindAll(s.uploader); err != nil {
		return err
	}

	s.phase = PhaseTexturesLoaded
	return nil
}

// DefineMaterials registers the material palette, rejecting duplicate tags.
func (s *SceneManager) DefineMaterials(materials []Material) error {
	if s.phase != PhaseTexturesLoaded {
		return fmt.Errorf("cannot define materials in phase %s", s.phase)
	}
	for _, material := range materials {
		if err := s.materials.Define(material); err != nil {
			return err
		}
	}
	s.phase = PhaseMaterialsDefined
	return nil
}

// ConfigureLights uploads the light rig to the shader and enables lighting.
// Slots past the configured lights stay zeroed.
func (s *SceneManager) ConfigureLights(lights []LightSource) error {
	if s.phase != PhaseMaterialsDefined {
		return fmt.Errorf("cannot configure lights in phase %s", s.phase)
	}
	if len(lights) > MaxLights {
		return fmt.Errorf("%d lights exceed the %d slots", len(lights), MaxLights)
	}

	s.lights = lights
	for i, light := range lights {
		prefix := fmt.Sprintf("lightSources[%d]", i)
		s.shader.SetVec3(prefix+".position", light.Position)
		s.shader.SetVec3(prefix+".ambientColor", light.AmbientColor)
		s.shader.SetVec3(prefix+".diffuseColor", light.DiffuseColor)
		s.shader.SetVec3(prefix+".specularColor", light.SpecularColor)
		s.shader.SetFloat(prefix+".focalStrength", light.FocalStrength)
		s.shader.SetFloat(prefix+".specularIntensity", light.SpecularIntensity)
		s.shader.SetFloat(prefix+".constant", light.Constant)
		s.shader.SetFloat(prefix+".linear", light.Linear)
		s.shader.SetFloat(prefix+".quadratic", light.Quadratic)
	}
	s.shader.SetBool("bUseLighting", true)

	s.phase = PhaseLightsConfigured
	return nil
}

// LoadMeshes uploads geometry for every shape the object list references.
func (s *SceneManager) LoadMeshes(objects []Object) error {
	if s.phase != PhaseLightsConfigured {
		return fmt.Errorf("cannot load meshes in phase %s", s.phase)
	}

	s.objects = objects
	loaded := make(map[ShapeType]bool)
	for _, object := range objects {
		if loaded[object.Shape] {
			continue
		}
		if err := s.drawer.LoadShape(object.Shape); err != nil {
			return fmt.Errorf("failed to load %s mesh: %w", object.Shape, err)
		}
		loaded[object.Shape] = true
	}

	s.phase = PhaseMeshesLoaded
	return nil
}

// Render draws every object in list order. Unknown texture tags fall back to
// a flat white color and unknown material tags to a neutral material, each
// logged. Rendering before Prepare completes is an error.
func (s *SceneManager) Render() error {
	if s.phase != PhaseReady {
		return fmt.Errorf("scene not ready: phase %s", s.phase)
	}

	for i := range s.objects {
		s.drawObject(&s.objects[i])
	}
	return nil
}

func (s *SceneManager) drawObject(object *Object) {
	model := ComposeTransform(object.Scale, object.RotationDeg, object.Position)
	s.shader.SetMat4("model", model)

	appearance := object.Appearance
	if appearance.Textured {
		if slot := s.textures.Slot(appearance.TextureTag); slot >= 0 {
			s.shader.SetBool("bUseTexture", true)
			s.shader.SetSampler("objectTexture", slot)
			s.shader.SetVec2("UVscale", appearance.UVScale)
		} else {
			core.LogWarn("texture tag not found, drawing flat", "tag", appearance.TextureTag)
			s.shader.SetBool("bUseTexture", false)
			s.shader.SetVec4("objectColor", core.ColorWhite.Vec4())
		}
	} else {
		s.shader.SetBool("bUseTexture", false)
		s.shader.SetVec4("objectColor", appearance.Color.Vec4())
	}

	material, ok := s.materials.Find(object.MaterialTag)
	if !ok {
		core.LogWarn("material tag not found, using neutral material", "tag", object.MaterialTag)
		material = neutralMaterial
	}
	s.shader.SetVec3("material.ambientColor", material.AmbientColor)
	s.shader.SetFloat("material.ambientStrength", material.AmbientStrength)
	s.shader.SetVec3("material.diffuseColor", material.DiffuseColor)
	s.shader.SetVec3("material.specularColor", material.SpecularColor)
	s.shader.SetFloat("material.shininess", material.Shininess)

	s.drawer.Draw(object.Shape)
}

var neutralMaterial = Material{
	Tag:             "neutral",
	AmbientColor:    math.NewVec3(0.2, 0.2, 0.2),
	AmbientStrength: 0.3,
	DiffuseColor:    math.NewVec3(0.5, 0.5, 0.5),
	SpecularColor:   math.NewVec3(0.1, 0.1, 0.1),
	Shininess:       1,
}

// Phase reports the current preparation stage.
func (s *SceneManager) Phase() Phase {
	return s.phase
}

// Objects exposes the object list for inspection.
func (s *SceneManager) Objects() []Object {
	return s.objects
}

// Textures exposes the texture registry.
func (s *SceneManager) Textures() *TextureRegistry {
	return s.textures
}

// Destroy releases all GPU texture objects and resets the manager to its
// uninitialized state.
func (s *SceneManager) Destroy() {
	s.textures.Destroy(s.uploader)
	s.materials = NewMaterialRegistry()
	s.lights = nil
	s.objects = nil
	s.phase = PhaseUninitialized
}
