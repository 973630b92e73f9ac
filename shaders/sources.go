package shaders

// GLSL ES 1.00 sources. Attribute and uniform names are looked up by name in
// Init, so renaming one here means renaming it there too.

const vShaderShape = `
uniform mat4 u_MVPMatrix;
uniform mat4 u_MVMatrix;
uniform vec3 u_LightPos;
attribute vec4 a_Position;
attribute vec4 a_Color;
attribute vec3 a_Normal;
attribute vec2 TexCoordIn;
varying vec4 v_Color;
varying vec3 v_Position;
varying vec3 v_Normal;
varying vec2 TexCoordOut;
void main() {
    v_Position = vec3(u_MVMatrix * a_Position);
    v_Normal = normalize(vec3(u_MVMatrix * vec4(a_Normal, 0.0)));
    v_Color = a_Color;
    TexCoordOut = TexCoordIn;
    gl_Position = u_MVPMatrix * a_Position;
}
`

const fShaderShape = `
precision mediump float;
uniform vec3 u_LightPos;
uniform int u_Light;
uniform sampler2D Texture;
varying vec4 v_Color;
varying vec3 v_Position;
varying vec3 v_Normal;
varying vec2 TexCoordOut;
void main() {
    vec4 base = v_Color * texture2D(Texture, TexCoordOut);
    if (u_Light == 0) {
        gl_FragColor = base;
        return;
    }
    float distance = length(u_LightPos - v_Position);
    vec3 lightVector = normalize(u_LightPos - v_Position);
    float diffuse = max(dot(v_Normal, lightVector), 0.1);
    diffuse = diffuse * (1.0 / (1.0 + (0.05 * distance * distance)));
    gl_FragColor = vec4(base.rgb * (diffuse + 0.3), base.a);
}
`

const vShaderPoint = `
uniform mat4 u_MVPMatrix;
attribute vec4 a_Position;
attribute vec3 a_Normal;
void main() {
    gl_Position = u_MVPMatrix * a_Position;
    gl_PointSize = 8.0;
}
`

const fShaderPoint = `
precision mediump float;
uniform vec4 u_Color;
uniform int u_Light;
void main() {
    if (u_Light == 0) {
        discard;
    }
    gl_FragColor = u_Color;
}
`

const vShaderGround = `
uniform mat4 u_MVPMatrix;
attribute vec4 a_Position;
attribute vec3 a_Normal;
attribute vec2 TexCoordIn;
varying vec3 v_Position;
varying vec3 v_Normal;
varying vec2 TexCoordOut;
void main() {
    v_Position = vec3(a_Position);
    v_Normal = a_Normal;
    TexCoordOut = TexCoordIn;
    gl_Position = u_MVPMatrix * a_Position;
}
`

const fShaderGround = `
precision mediump float;
uniform vec3 u_LightPos;
uniform vec3 u_Light2Pos;
uniform int u_LightF;
uniform int u_DifF;
uniform int u_TexF;
uniform sampler2D Texture;
varying vec3 v_Position;
varying vec3 v_Normal;
varying vec2 TexCoordOut;
void main() {
    vec4 color = vec4(0.8, 0.8, 0.8, 1.0);
    if (u_TexF != 0) {
        color = texture2D(Texture, TexCoordOut);
    }
    float light = 1.0;
    if (u_LightF != 0) {
        vec3 n = normalize(v_Normal);
        float d1 = max(dot(n, normalize(u_LightPos - v_Position)), 0.0);
        float d2 = max(dot(n, normalize(u_Light2Pos - v_Position)), 0.0);
        light = 0.25 + 0.75 * max(d1, d2);
        if (u_DifF != 0) {
            light = 0.25 + 0.5 * (d1 + d2);
        }
    }
    gl_FragColor = vec4(color.rgb * light, color.a);
}
`

const vShaderScene = `
uniform mat4 u_MVPMatrix;
attribute vec4 a_Position;
attribute vec4 a_Color;
attribute vec2 TexCoordIn;
varying vec4 v_Color;
varying vec2 TexCoordOut;
void main() {
    v_Color = a_Color;
    TexCoordOut = TexCoordIn;
    gl_Position = u_MVPMatrix * a_Position;
}
`

const fShaderScene = `
precision mediump float;
uniform sampler2D Texture;
varying vec4 v_Color;
varying vec2 TexCoordOut;
void main() {
    gl_FragColor = v_Color * texture2D(Texture, TexCoordOut);
}
`

const vShaderSquare = `
uniform mat4 u_MVPMatrix;
attribute vec4 a_Position;
attribute vec2 TexCoordIn;
varying vec2 TexCoordOut;
void main() {
    TexCoordOut = TexCoordIn;
    gl_Position = u_MVPMatrix * a_Position;
}
`

const fShaderSquare = `
precision mediump float;
uniform vec4 u_Color;
uniform sampler2D Texture;
varying vec2 TexCoordOut;
void main() {
    gl_FragColor = u_Color * texture2D(Texture, TexCoordOut);
}
`

const vShaderFont = `
attribute vec4 a_Position;
attribute vec2 TexCoordIn;
varying vec2 TexCoordOut;
void main() {
    TexCoordOut = TexCoordIn;
    gl_Position = a_Position;
}
`

const fShaderFont = `
precision mediump float;
uniform vec4 u_Color;
uniform sampler2D Texture;
varying vec2 TexCoordOut;
void main() {
    gl_FragColor = vec4(u_Color.rgb, u_Color.a * texture2D(Texture, TexCoordOut).a);
}
`

const vShaderRandom = `
uniform mat4 u_MVPMatrix;
uniform vec3 u_Position;
attribute vec4 a_Position;
void main() {
    gl_Position = u_MVPMatrix * (a_Position + vec4(u_Position, 0.0));
    gl_PointSize = 2.0;
}
`

const fShaderRandom = `
precision mediump float;
uniform vec4 u_Color;
void main() {
    gl_FragColor = u_Color;
}
`
