package render

// HalfBlock is the upper-half block glyph, fg paints the top pixel and bg the bottom
const HalfBlock = '▀'

// Present writes pixel row pairs of fb as half-block cells into the top rows of buf
func Present(fb *FrameBuffer, buf *Buffer) {
	rows := min(fb.height/2, buf.height)
	cols := min(fb.width, buf.width)
	for cy := 0; cy < rows; cy++ {
		top := fb.pix[2*cy*fb.width:]
		bottom := fb.pix[(2*cy+1)*fb.width:]
		for x := 0; x < cols; x++ {
			fg, bg := FromVec(top[x]), FromVec(bottom[x])
			if fg == RGBBlack && bg == RGBBlack {
				buf.SetWithBg(x, cy, ' ', RGBWhite, RGBBlack)
				continue
			}
			buf.SetWithBg(x, cy, HalfBlock, fg, bg)
		}
	}
}
