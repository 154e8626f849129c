package opengl

// GLSL sources for the scene shader. Uniform names here are the ones
// pipeline.DefaultUniformConfig returns; change them together.

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 fragNormal;
out vec3 fragWorldPos;
out vec2 fragUV;

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    gl_Position  = projection * view * worldPos;
    fragWorldPos = worldPos.xyz;
    fragNormal   = mat3(transpose(inverse(model))) * inNormal;
    fragUV       = inUV * UVscale;
}
` + "\x00"

// fragment shader: Phong with one directional light, an indexed point light
// array, and one spot light. Inactive lights contribute nothing, so partially
// populated slots are safe.
const fragSrc = `
#version 410 core
in vec3 fragNormal;
in vec3 fragWorldPos;
in vec2 fragUV;

out vec4 outColor;

struct Material {
    vec3  diffuseColor;
    vec3  specularColor;
    float shininess;
};

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct SpotLight {
    vec3  position;
    vec3  direction;
    vec3  ambient;
    vec3  diffuse;
    vec3  specular;
    float constant;
    float linear;
    float quadratic;
    float cutOff;
    float outerCutOff;
    bool  bActive;
};

#define MAX_POINT_LIGHTS 5

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;

uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[MAX_POINT_LIGHTS];
uniform SpotLight spotLight;

vec3 shade(vec3 lightAmbient, vec3 lightDiffuse, vec3 lightSpecular,
           vec3 L, vec3 N, vec3 V, vec3 base) {
    vec3  ambient  = lightAmbient * base;
    float diff     = max(dot(N, L), 0.0);
    vec3  diffuse  = lightDiffuse * diff * base * material.diffuseColor;
    vec3  R        = reflect(-L, N);
    float spec     = pow(max(dot(V, R), 0.0), max(material.shininess, 1.0));
    vec3  specular = lightSpecular * spec * material.specularColor;
    return ambient + diffuse + specular;
}

void main() {
    vec4 base = bUseTexture ? texture(objectTexture, fragUV) : objectColor;

    if (!bUseLighting) {
        outColor = base;
        return;
    }

    vec3 N = normalize(fragNormal);
    vec3 V = normalize(viewPosition - fragWorldPos);
    vec3 result = vec3(0.0);

    if (directionalLight.bActive) {
        vec3 L = normalize(-directionalLight.direction);
        result += shade(directionalLight.ambient, directionalLight.diffuse,
                        directionalLight.specular, L, N, V, base.rgb);
    }

    for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
        if (!pointLights[i].bActive) {
            continue;
        }
        vec3 L = normalize(pointLights[i].position - fragWorldPos);
        result += shade(pointLights[i].ambient, pointLights[i].diffuse,
                        pointLights[i].specular, L, N, V, base.rgb);
    }

    if (spotLight.bActive) {
        vec3  toLight = spotLight.position - fragWorldPos;
        float dist    = length(toLight);
        vec3  L       = normalize(toLight);
        float atten   = 1.0 / (spotLight.constant + spotLight.linear * dist +
                               spotLight.quadratic * dist * dist);
        float theta = dot(L, normalize(-spotLight.direction));
        float eps   = spotLight.cutOff - spotLight.outerCutOff;
        float cone  = clamp((theta - spotLight.outerCutOff) / eps, 0.0, 1.0);
        result += atten * cone * shade(spotLight.ambient, spotLight.diffuse,
                                       spotLight.specular, L, N, V, base.rgb);
    }

    outColor = vec4(result, base.a);
}
` + "\x00"
