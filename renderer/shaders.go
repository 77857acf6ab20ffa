// Package renderer draws the universe, the product cards and the shooting
// stars with raylib. It is the only package besides ui and app that needs a
// window.
package renderer

// universeVS passes billboard corners through with their UVs and point colour.
const universeVS = `#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;

void main() {
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// universeFS draws a soft disc per billboard. uSpeed brightens every point
// while the field spins fast.
const universeFS = `#version 330

in vec2 fragTexCoord;
in vec4 fragColor;

uniform float uSpeed;

out vec4 finalColor;

void main() {
    float r = distance(fragTexCoord, vec2(0.5));
    if (r > 0.5) discard;

    float alpha = (1.0 - 2.0 * r) * 0.8;
    vec3 color = fragColor.rgb + vec3(uSpeed * 0.5);
    finalColor = vec4(color, alpha);
}
`
