package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-demos/internal/material"
	"shape-demos/internal/scene"
)

// loadLitShader returns the shader used for every GPU mesh: ambient plus up to scene.MaxLights
// point or directional lights, with a metalness/roughness or Phong highlight chosen per draw.
// Same vertex attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
#define MAX_LIGHTS 4
#define PI 3.14159265
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform float lightCount;
uniform vec3 lightPos[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform float lightKind[MAX_LIGHTS];
uniform float shadingModel;
uniform float metalness;
uniform float roughness;
uniform float shininess;
out vec4 finalColor;
void main() {
  vec3 base = pow(colDiffuse.rgb, vec3(2.2));
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  float diffuseWeight = 1.0;
  vec3 specColor = vec3(0.0067);
  float gloss = shininess;
  if (shadingModel < 0.5) {
    diffuseWeight = 1.0 - metalness;
    specColor = mix(vec3(0.04), base, metalness);
    float a = max(roughness * roughness, 0.001);
    gloss = clamp(2.0 / (a * a) - 2.0, 1.0, 256.0);
  }
  vec3 result = base * diffuseWeight * ambient / PI;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (float(i) >= lightCount) break;
    vec3 radiance = lightColor[i];
    vec3 L;
    if (lightKind[i] > 0.5) {
      L = normalize(lightPos[i]);
    } else {
      vec3 d = lightPos[i] - fragPosition;
      L = normalize(d);
      radiance /= max(dot(d, d), 0.01);
    }
    float NdotL = dot(N, L);
    if (NdotL <= 0.0) continue;
    vec3 H = normalize(L + V);
    float spec = pow(max(dot(N, H), 0.0), gloss) * (gloss + 2.0) / 8.0;
    result += (base * diffuseWeight / PI + specColor * spec) * radiance * NdotL;
  }
  finalColor = vec4(pow(clamp(result, 0.0, 1.0), vec3(1.0 / 2.2)), colDiffuse.a);
}
`
)

// setLightUniforms uploads the camera position and the scene's lights (cgo-safe: local arrays).
func (r *Registry) setLightUniforms(s *scene.Scene) {
	shader := r.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := s.Camera.Position
	amb := s.Ambient()
	lights := s.DirectLights()
	var pos, col [scene.MaxLights * 3]float32
	var kind [scene.MaxLights]float32
	for i, l := range lights {
		rad := l.Radiance()
		copy(pos[i*3:], l.Position[:])
		copy(col[i*3:], rad[:])
		if l.Kind == scene.Directional {
			kind[i] = 1
		}
	}
	setVec3(shader, "viewPos", viewPos[:], 1)
	setVec3(shader, "ambient", amb[:], 1)
	setFloat(shader, "lightCount", float32(len(lights)))
	if len(lights) > 0 {
		setVec3(shader, "lightPos", pos[:], int32(len(lights)))
		setVec3(shader, "lightColor", col[:], int32(len(lights)))
		if loc := rl.GetShaderLocation(shader, "lightKind"); loc >= 0 {
			rl.SetShaderValueV(shader, loc, kind[:], rl.ShaderUniformFloat, int32(len(lights)))
		}
	}
}

// setMaterialUniforms uploads the per-draw material parameters.
func (r *Registry) setMaterialUniforms(m *material.Material) {
	shader := r.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	model := float32(0)
	if m.Shading == material.Phong {
		model = 1
	}
	setFloat(shader, "shadingModel", model)
	setFloat(shader, "metalness", m.Metalness)
	setFloat(shader, "roughness", m.Roughness)
	setFloat(shader, "shininess", m.Shininess)
}

func setVec3(shader rl.Shader, name string, v []float32, count int32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, count)
	}
}

func setFloat(shader rl.Shader, name string, v float32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}
