package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"room-renderer/math"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
	vec4 worldPosition = model * vec4(aPosition, 1.0);
	fragPosition = worldPosition.xyz;
	fragNormal = mat3(transpose(inverse(model))) * aNormal;
	fragUV = aUV * UVscale;
	gl_Position = projection * view * worldPosition;
}
` + "\x00"

const fragmentShaderSource = `#version 410 core
struct Material {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct LightSource {
	vec3 position;
	vec3 ambientColor;
	vec3 diffuseColor;
	vec3 specularColor;
	float focalStrength;
	float specularIntensity;
	float constant;
	float linear;
	float quadratic;
};

#define MAX_LIGHTS 4

in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragUV;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[MAX_LIGHTS];

out vec4 outColor;

vec3 shadeLight(LightSource light, vec3 normal, vec3 viewDir, vec3 baseColor) {
	vec3 lightDir = normalize(light.position - fragPosition);

	vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;

	float diffuseFactor = max(dot(normal, lightDir), 0.0);
	vec3 diffuse = light.diffuseColor * diffuseFactor * material.diffuseColor;

	vec3 reflectDir = reflect(-lightDir, normal);
	float specularFactor = pow(max(dot(viewDir, reflectDir), 0.001), light.focalStrength);
	vec3 specular = light.specularColor * light.specularIntensity * specularFactor * material.specularColor;

	float dist = length(light.position - fragPosition);
	float attenuation = 1.0 / (light.constant + light.linear * dist + light.quadratic * dist * dist);

	return (ambient + (diffuse + specular) * attenuation) * baseColor;
}

void main() {
	vec4 base = bUseTexture ? texture(objectTexture, fragUV) : objectColor;
	if (!bUseLighting) {
		outColor = base;
		return;
	}

	vec3 normal = normalize(fragNormal);
	vec3 viewDir = normalize(viewPosition - fragPosition);

	vec3 shaded = vec3(0.0);
	for (int i = 0; i < MAX_LIGHTS; i++) {
		shaded += shadeLight(lightSources[i], normal, viewDir, base.rgb);
	}
	outColor = vec4(shaded, base.a);
}
` + "\x00"

// Program wraps a compiled shader program with a uniform location cache.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// NewProgram compiles and links the scene shader.
func NewProgram() (*Program, error) {
	handle, err := linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	return &Program{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

func (p *Program) Destroy() {
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

// location caches uniform lookups. Unknown names resolve to -1, which GL
// silently ignores on upload.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0][0])
}

func (p *Program) SetVec4(name string, v math.Vec4) {
	gl.Uniform4f(p.location(name), v.X, v.Y, v.Z, v.W)
}

func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.location(name), v.X, v.Y, v.Z)
}

func (p *Program) SetVec2(name string, v math.Vec2) {
	gl.Uniform2f(p.location(name), v.X, v.Y)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetSampler(name string, slot int) {
	gl.Uniform1i(p.location(name), int32(slot))
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
