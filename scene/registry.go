package scene

import "fmt"

// MaxTextures caps the number of textures a scene may register. Each loaded
// texture occupies its own texture unit for the whole frame.
const MaxTextures = 16

// TextureRegistry holds loaded textures in registration order and resolves
// them by tag. Slot assignment follows registration order.
type TextureRegistry struct {
	entries []*Texture
	byTag   map[string]*Texture
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{
		byTag: make(map[string]*Texture),
	}
}

// Add registers a texture under its tag. Duplicate tags and registrations
// past the slot cap are rejected.
func (r *TextureRegistry) Add(texture *Texture) error {
	if _, exists := r.byTag[texture.Tag]; exists {
		return fmt.Errorf("texture tag %q already registered", texture.Tag)
	}
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("texture registry full: cannot register %q past %d textures", texture.Tag, MaxTextures)
	}
	texture.Slot = len(r.entries)
	r.entries = append(r.entries, texture)
	r.byTag[texture.Tag] = texture
	return nil
}

// ByTag looks a texture up by tag. The boolean reports whether the tag is
// registered.
func (r *TextureRegistry) ByTag(tag string) (*Texture, bool) {
	texture, ok := r.byTag[tag]
	return texture, ok
}

// Slot returns the texture unit assigned to a tag, or -1 when the tag is
// unknown.
func (r *TextureRegistry) Slot(tag string) int {
	if texture, ok := r.byTag[tag]; ok {
		return texture.Slot
	}
	return -1
}

func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

func (r *TextureRegistry) At(index int) *Texture {
	return r.entries[index]
}

// BindAll uploads any texture not yet on the GPU and binds each one to its
// assigned unit.
func (r *TextureRegistry) BindAll(uploader TextureUploader) error {
	for _, texture := range r.entries {
		if texture.Handle == 0 {
			if err := uploader.Upload(texture); err != nil {
				return fmt.Errorf("failed to upload texture %q: %w", texture.Tag, err)
			}
		}
		uploader.Bind(texture)
	}
	return nil
}

// Destroy releases the GPU objects of every uploaded texture and empties the
// registry.
func (r *TextureRegistry) Destroy(uploader TextureUploader) {
	for _, texture := range r.entries {
		if texture.Handle != 0 {
			uploader.Release(texture)
		}
	}
	r.entries = nil
	r.byTag = make(map[string]*Texture)
}

// MaterialRegistry resolves Phong materials by tag.
type MaterialRegistry struct {
	byTag map[string]Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{
		byTag: make(map[string]Material),
	}
}

// Define registers a material under its tag, rejecting duplicates.
func (r *MaterialRegistry) Define(material Material) error {
	if _, exists := r.byTag[material.Tag]; exists {
		return fmt.Errorf("material tag %q already defined", material.Tag)
	}
	r.byTag[material.Tag] = material
	return nil
}

// Find looks a material up by tag. The boolean reports whether the tag is
// defined.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	material, ok := r.byTag[tag]
	return material, ok
}

func (r *MaterialRegistry) Len() int {
	return len(r.byTag)
}
