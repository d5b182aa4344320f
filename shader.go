package folio

// galleryShaderSrc is the Kage fragment shader that renders the tiled
// gallery. It repeats the Mapper's math per pixel so pointer hits land on
// the cell that is drawn under them.
//
// Source images: 0 is the image atlas, 1 the label atlas. Both are the same
// size. Ebitengine images are premultiplied; colour uniforms are straight
// alpha and premultiplied here.
const galleryShaderSrc = `//kage:unit pixels
package main

var Offset vec2
var Resolution vec2
var PixelRatio float
var BorderColor vec4
var HoverColor vec4
var BackgroundColor vec4
var MousePos vec2
var Zoom float
var CellSize float
var TextureCount float
var AtlasSide float
var CellPixels float
var Distortion float
var Stagger float
var ImageLinear float
var LabelLinear float
var Alpha float

func premul(c vec4) vec4 {
	return vec4(c.rgb*c.a, c.a)
}

func over(dst vec4, src vec4) vec4 {
	return src + dst*(1-src.a)
}

func toWorld(screen vec2) vec2 {
	clip := screen/Resolution*2 - 1
	clip.y = -clip.y
	d := 1 - Distortion*dot(clip, clip)
	aspect := Resolution.x / Resolution.y
	return vec2(clip.x*d*aspect*Zoom+Offset.x, clip.y*d*Zoom+Offset.y)
}

func cellOrigin(cell vec2) vec2 {
	idx := floor(mod(cell.x+cell.y*Stagger, TextureCount))
	col := mod(idx, AtlasSide)
	row := floor(idx / AtlasSide)
	return vec2(col, row) * CellPixels
}

func sample0(p vec2, lo vec2, hi vec2) vec4 {
	o := imageSrc0Origin()
	if ImageLinear < 0.5 {
		return imageSrc0At(o + clamp(floor(p)+0.5, lo, hi))
	}
	q := p - 0.5
	f := fract(q)
	b := floor(q) + 0.5
	c00 := imageSrc0At(o + clamp(b, lo, hi))
	c10 := imageSrc0At(o + clamp(b+vec2(1, 0), lo, hi))
	c01 := imageSrc0At(o + clamp(b+vec2(0, 1), lo, hi))
	c11 := imageSrc0At(o + clamp(b+vec2(1, 1), lo, hi))
	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func sample1(p vec2, lo vec2, hi vec2) vec4 {
	o := imageSrc1Origin()
	if LabelLinear < 0.5 {
		return imageSrc1At(o + clamp(floor(p)+0.5, lo, hi))
	}
	q := p - 0.5
	f := fract(q)
	b := floor(q) + 0.5
	c00 := imageSrc1At(o + clamp(b, lo, hi))
	c10 := imageSrc1At(o + clamp(b+vec2(1, 0), lo, hi))
	c01 := imageSrc1At(o + clamp(b+vec2(0, 1), lo, hi))
	c11 := imageSrc1At(o + clamp(b+vec2(1, 1), lo, hi))
	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	bg := premul(BackgroundColor)
	screen := (dstPos.xy - imageDstOrigin()) / PixelRatio
	world := toWorld(screen)
	cell := floor(world / CellSize)
	local := fract(world / CellSize)

	origin := cellOrigin(cell)
	lo := origin + 0.5
	hi := origin + CellPixels - 0.5

	result := bg

	// Photo: x in [0.15, 0.85], y in [0.2, 0.9] of the cell, Y up.
	if local.x >= 0.15 && local.x <= 0.85 && local.y >= 0.2 && local.y <= 0.9 {
		uv := vec2((local.x-0.15)/0.7, 1-(local.y-0.2)/0.7)
		result = over(result, sample0(origin+uv*CellPixels, lo, hi))
	}

	// Label strip below the photo.
	if local.x >= 0.15 && local.x <= 0.85 && local.y >= 0.07 && local.y <= 0.16 {
		uv := vec2((local.x-0.15)/0.7, 1-(local.y-0.07)/0.09)
		result = over(result, sample1(origin+uv*CellPixels, lo, hi))
	}

	bw := 2 * Zoom / (Resolution.y * CellSize)
	if local.x < bw || local.y < bw {
		result = over(result, premul(BorderColor))
	}

	if MousePos.x >= 0 && MousePos.y >= 0 {
		hover := floor(toWorld(MousePos) / CellSize)
		if hover.x == cell.x && hover.y == cell.y {
			result = over(result, premul(HoverColor))
		}
	}

	return mix(bg, result, Alpha)
}
`
