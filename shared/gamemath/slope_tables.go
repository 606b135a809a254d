package gamemath

// Column masks for every tabulated slope. Column x of slope (L,R) holds the
// cells below L + trunc((R-L)*x/15).
var slopeOrder = []Slope{
	{0, 15}, {15, 0},
	{0, 7}, {8, 15}, {15, 8}, {7, 0},
	{0, 3}, {4, 7}, {8, 11}, {12, 15}, {15, 12}, {11, 8}, {7, 4}, {3, 0},
}

var slopeBitmaps = map[Slope]*SlopeBitmap{
	// One-tile ramps.
	{0, 15}: {
		0x0000, 0x0001, 0x0003, 0x0007, 0x000f, 0x001f, 0x003f, 0x007f,
		0x00ff, 0x01ff, 0x03ff, 0x07ff, 0x0fff, 0x1fff, 0x3fff, 0x7fff,
	},
	{15, 0}: {
		0x7fff, 0x3fff, 0x1fff, 0x0fff, 0x07ff, 0x03ff, 0x01ff, 0x00ff,
		0x007f, 0x003f, 0x001f, 0x000f, 0x0007, 0x0003, 0x0001, 0x0000,
	},

	// Two-tile ramps.
	{0, 7}: {
		0x0000, 0x0000, 0x0000, 0x0001, 0x0001, 0x0003, 0x0003, 0x0007,
		0x0007, 0x000f, 0x000f, 0x001f, 0x001f, 0x003f, 0x003f, 0x007f,
	},
	{8, 15}: {
		0x00ff, 0x00ff, 0x00ff, 0x01ff, 0x01ff, 0x03ff, 0x03ff, 0x07ff,
		0x07ff, 0x0fff, 0x0fff, 0x1fff, 0x1fff, 0x3fff, 0x3fff, 0x7fff,
	},
	{15, 8}: {
		0x7fff, 0x7fff, 0x7fff, 0x3fff, 0x3fff, 0x1fff, 0x1fff, 0x0fff,
		0x0fff, 0x07ff, 0x07ff, 0x03ff, 0x03ff, 0x01ff, 0x01ff, 0x00ff,
	},
	{7, 0}: {
		0x007f, 0x007f, 0x007f, 0x003f, 0x003f, 0x001f, 0x001f, 0x000f,
		0x000f, 0x0007, 0x0007, 0x0003, 0x0003, 0x0001, 0x0001, 0x0000,
	},

	// Four-tile ramps.
	{0, 3}: {
		0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0001, 0x0001, 0x0001,
		0x0001, 0x0001, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003, 0x0007,
	},
	{4, 7}: {
		0x000f, 0x000f, 0x000f, 0x000f, 0x000f, 0x001f, 0x001f, 0x001f,
		0x001f, 0x001f, 0x003f, 0x003f, 0x003f, 0x003f, 0x003f, 0x007f,
	},
	{8, 11}: {
		0x00ff, 0x00ff, 0x00ff, 0x00ff, 0x00ff, 0x01ff, 0x01ff, 0x01ff,
		0x01ff, 0x01ff, 0x03ff, 0x03ff, 0x03ff, 0x03ff, 0x03ff, 0x07ff,
	},
	{12, 15}: {
		0x0fff, 0x0fff, 0x0fff, 0x0fff, 0x0fff, 0x1fff, 0x1fff, 0x1fff,
		0x1fff, 0x1fff, 0x3fff, 0x3fff, 0x3fff, 0x3fff, 0x3fff, 0x7fff,
	},
	{15, 12}: {
		0x7fff, 0x7fff, 0x7fff, 0x7fff, 0x7fff, 0x3fff, 0x3fff, 0x3fff,
		0x3fff, 0x3fff, 0x1fff, 0x1fff, 0x1fff, 0x1fff, 0x1fff, 0x0fff,
	},
	{11, 8}: {
		0x07ff, 0x07ff, 0x07ff, 0x07ff, 0x07ff, 0x03ff, 0x03ff, 0x03ff,
		0x03ff, 0x03ff, 0x01ff, 0x01ff, 0x01ff, 0x01ff, 0x01ff, 0x00ff,
	},
	{7, 4}: {
		0x007f, 0x007f, 0x007f, 0x007f, 0x007f, 0x003f, 0x003f, 0x003f,
		0x003f, 0x003f, 0x001f, 0x001f, 0x001f, 0x001f, 0x001f, 0x000f,
	},
	{3, 0}: {
		0x0007, 0x0007, 0x0007, 0x0007, 0x0007, 0x0003, 0x0003, 0x0003,
		0x0003, 0x0003, 0x0001, 0x0001, 0x0001, 0x0001, 0x0001, 0x0000,
	},
}
