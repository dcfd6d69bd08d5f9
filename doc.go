/*
Package rainbow generates perceptually even color gradients for tinting
particles.

Gradients are sampled on a ring of constant lightness and chroma in the
OKLCh color space (see the colorspace sub-package) and converted to sRGB.
The package also renders gradients as swatch images and looping
animations, and can recolor an image through a gradient.

All functions are safe for concurrent use.
*/
package rainbow
