package editors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/lightx-go/api"
	"github.com/BaSui01/lightx-go/types"
)

// Every feature request must satisfy api.Request.
var _ = []api.Request{
	(*RemoveBackgroundRequest)(nil),
	(*CleanupPictureRequest)(nil),
	(*ExpandPhotoRequest)(nil),
	(*ReplaceRequest)(nil),
	(*CartoonRequest)(nil),
	(*CaricatureRequest)(nil),
	(*AvatarRequest)(nil),
	(*ProductPhotoshootRequest)(nil),
	(*PortraitRequest)(nil),
	(*BackgroundGeneratorRequest)(nil),
	(*FaceSwapRequest)(nil),
	(*OutfitRequest)(nil),
	(*Image2ImageRequest)(nil),
	(*Sketch2ImageRequest)(nil),
	(*HairstyleRequest)(nil),
	(*UpscaleRequest)(nil),
	(*AIFilterRequest)(nil),
	(*HairColorRequest)(nil),
	(*HairColorRGBRequest)(nil),
	(*VirtualTryOnRequest)(nil),
	(*HeadshotRequest)(nil),
	(*AIDesignRequest)(nil),
	(*LogoGeneratorRequest)(nil),
	(*WatermarkRemoverRequest)(nil),
}

const (
	testImageURL = "https://cdn.lightxeditor.test/input.jpg"
	testMaskURL  = "https://cdn.lightxeditor.test/mask.jpg"
	testStyleURL = "https://cdn.lightxeditor.test/style.jpg"
)

func TestEndpointPaths(t *testing.T) {
	tests := []struct {
		name string
		req  api.Request
		want string
	}{
		{"remove background", &RemoveBackgroundRequest{}, "v1/remove-background"},
		{"cleanup picture", &CleanupPictureRequest{}, "v1/cleanup-picture"},
		{"expand photo", &ExpandPhotoRequest{}, "v1/expand-photo"},
		{"replace", &ReplaceRequest{}, "v1/replace"},
		{"cartoon", &CartoonRequest{}, "v1/cartoon"},
		{"caricature", &CaricatureRequest{}, "v1/caricature"},
		{"avatar", &AvatarRequest{}, "v1/avatar"},
		{"product photoshoot", &ProductPhotoshootRequest{}, "v1/product-photoshoot"},
		{"portrait", &PortraitRequest{}, "v1/portrait"},
		{"background generator", &BackgroundGeneratorRequest{}, "v1/background-generator"},
		{"face swap", &FaceSwapRequest{}, "v1/face-swap"},
		{"outfit", &OutfitRequest{}, "v1/outfit"},
		{"image2image", &Image2ImageRequest{}, "v1/image2image"},
		{"sketch2image", &Sketch2ImageRequest{}, "v1/sketch2image"},
		{"hairstyle", &HairstyleRequest{}, "v1/hairstyle"},
		{"upscale", &UpscaleRequest{}, "v2/upscale/"},
		{"ai filter", &AIFilterRequest{}, "v2/aifilter"},
		{"hair color", &HairColorRequest{}, "v2/haircolor/"},
		{"hair color rgb", &HairColorRGBRequest{}, "v2/haircolor-rgb"},
		{"virtual try-on", &VirtualTryOnRequest{}, "v2/aivirtualtryon"},
		{"headshot", &HeadshotRequest{}, "v2/headshot/"},
		{"ai design", &AIDesignRequest{}, "v2/ai-design"},
		{"logo generator", &LogoGeneratorRequest{}, "v2/logo-generator"},
		{"watermark remover", &WatermarkRemoverRequest{}, "v2/watermark-remover/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Endpoint().GeneratePath())
		})
	}
}

func TestStatusPathFollowsVersion(t *testing.T) {
	assert.Equal(t, "v1/order-status", (&CartoonRequest{}).Endpoint().StatusPath())
	assert.Equal(t, "v2/order-status", (&UpscaleRequest{}).Endpoint().StatusPath())

	// Trailing slashes belong to the feature path only.
	assert.Equal(t, "v2/order-status", (&WatermarkRemoverRequest{}).Endpoint().StatusPath())
}

func TestValidateAcceptsCompleteRequests(t *testing.T) {
	tests := []struct {
		name string
		req  api.Request
	}{
		{"remove background minimal", &RemoveBackgroundRequest{ImageURL: testImageURL}},
		{"remove background with color", &RemoveBackgroundRequest{ImageURL: testImageURL, Background: String("#FF0000")}},
		{"cleanup picture", &CleanupPictureRequest{ImageURL: testImageURL, MaskedImageURL: testMaskURL}},
		{"expand photo zero paddings", &ExpandPhotoRequest{ImageURL: testImageURL}},
		{"expand photo", &ExpandPhotoRequest{ImageURL: testImageURL, LeftPadding: 100, TopPadding: 50}},
		{"replace", &ReplaceRequest{ImageURL: testImageURL, MaskedImageURL: testMaskURL, TextPrompt: "a red balloon"}},
		{"cartoon minimal", &CartoonRequest{ImageURL: testImageURL}},
		{"cartoon with style", &CartoonRequest{ImageURL: testImageURL, StyleImageURL: String(testStyleURL), TextPrompt: String("watercolor")}},
		{"caricature", &CaricatureRequest{ImageURL: testImageURL, TextPrompt: String("exaggerated grin")}},
		{"avatar", &AvatarRequest{ImageURL: testImageURL}},
		{"product photoshoot", &ProductPhotoshootRequest{ImageURL: testImageURL, TextPrompt: String("marble table")}},
		{"portrait", &PortraitRequest{ImageURL: testImageURL}},
		{"background generator", &BackgroundGeneratorRequest{ImageURL: testImageURL, TextPrompt: "sunlit beach"}},
		{"face swap", &FaceSwapRequest{ImageURL: testImageURL, StyleImageURL: testStyleURL}},
		{"outfit", &OutfitRequest{ImageURL: testImageURL, TextPrompt: "blue denim jacket"}},
		{"image2image", &Image2ImageRequest{ImageURL: testImageURL, Strength: 0.5, TextPrompt: "oil painting"}},
		{"image2image strength bounds", &Image2ImageRequest{ImageURL: testImageURL, Strength: 0, TextPrompt: "pencil sketch", StyleStrength: Float64(1)}},
		{"sketch2image", &Sketch2ImageRequest{ImageURL: testImageURL, Strength: 1, TextPrompt: "castle on a hill"}},
		{"hairstyle", &HairstyleRequest{ImageURL: testImageURL, TextPrompt: "short bob"}},
		{"upscale 2x", &UpscaleRequest{ImageURL: testImageURL, Quality: 2}},
		{"upscale 4x", &UpscaleRequest{ImageURL: testImageURL, Quality: 4}},
		{"ai filter", &AIFilterRequest{ImageURL: testImageURL, TextPrompt: "vintage film look"}},
		{"hair color", &HairColorRequest{ImageURL: testImageURL, TextPrompt: "auburn"}},
		{"hair color rgb", &HairColorRGBRequest{ImageURL: testImageURL, HairHexColor: "#AA32F1", ColorStrength: 0.7}},
		{"hair color rgb short hex", &HairColorRGBRequest{ImageURL: testImageURL, HairHexColor: "#a3f", ColorStrength: 1}},
		{"virtual try-on", &VirtualTryOnRequest{ImageURL: testImageURL, StyleImageURL: testStyleURL}},
		{"headshot", &HeadshotRequest{ImageURL: testImageURL, TextPrompt: "navy suit, gray backdrop"}},
		{"ai design", &AIDesignRequest{TextPrompt: "minimalist poster", Resolution: "1:1"}},
		{"ai design wide", &AIDesignRequest{TextPrompt: "banner", Resolution: "16:9", EnhancePrompt: true}},
		{"logo generator", &LogoGeneratorRequest{TextPrompt: "fox mascot logo", EnhancePrompt: true}},
		{"watermark remover", &WatermarkRemoverRequest{ImageURL: testImageURL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.req.Validate())
		})
	}
}

func TestValidateRejectsBrokenRequests(t *testing.T) {
	longPrompt := strings.Repeat("a", types.MaxPromptLength+1)

	tests := []struct {
		name    string
		req     api.Request
		wantMsg string
	}{
		{"empty image url", &RemoveBackgroundRequest{}, "imageUrl"},
		{"blank image url", &RemoveBackgroundRequest{ImageURL: "   "}, "imageUrl"},
		{"missing mask", &CleanupPictureRequest{ImageURL: testImageURL}, "maskedImageUrl"},
		{"negative padding", &ExpandPhotoRequest{ImageURL: testImageURL, LeftPadding: -1}, "leftPadding"},
		{"replace without prompt", &ReplaceRequest{ImageURL: testImageURL, MaskedImageURL: testMaskURL}, "textPrompt"},
		{"blank required prompt", &OutfitRequest{ImageURL: testImageURL, TextPrompt: "  \t"}, "textPrompt"},
		{"over-limit prompt", &HairstyleRequest{ImageURL: testImageURL, TextPrompt: longPrompt}, "limit"},
		{"over-limit optional prompt", &CartoonRequest{ImageURL: testImageURL, TextPrompt: String(longPrompt)}, "limit"},
		{"blank optional prompt", &AvatarRequest{ImageURL: testImageURL, TextPrompt: String(" ")}, "textPrompt"},
		{"strength below zero", &Image2ImageRequest{ImageURL: testImageURL, Strength: -0.1, TextPrompt: "x"}, "strength"},
		{"strength above one", &Sketch2ImageRequest{ImageURL: testImageURL, Strength: 1.5, TextPrompt: "x"}, "strength"},
		{"style strength out of range", &Image2ImageRequest{ImageURL: testImageURL, Strength: 0.5, TextPrompt: "x", StyleStrength: Float64(2)}, "styleStrength"},
		{"face swap without style", &FaceSwapRequest{ImageURL: testImageURL}, "styleImageUrl"},
		{"upscale quality 3", &UpscaleRequest{ImageURL: testImageURL, Quality: 3}, "quality"},
		{"upscale quality 0", &UpscaleRequest{ImageURL: testImageURL}, "quality"},
		{"color name instead of hex", &HairColorRGBRequest{ImageURL: testImageURL, HairHexColor: "red", ColorStrength: 0.5}, "hairHexColor"},
		{"hex without hash", &HairColorRGBRequest{ImageURL: testImageURL, HairHexColor: "AA32F1", ColorStrength: 0.5}, "hairHexColor"},
		{"color strength out of range", &HairColorRGBRequest{ImageURL: testImageURL, HairHexColor: "#AA32F1", ColorStrength: 1.2}, "colorStrength"},
		{"try-on without style", &VirtualTryOnRequest{ImageURL: testImageURL}, "styleImageUrl"},
		{"design without prompt", &AIDesignRequest{Resolution: "1:1"}, "textPrompt"},
		{"design bad resolution", &AIDesignRequest{TextPrompt: "poster", Resolution: "5:7"}, "resolution"},
		{"logo without prompt", &LogoGeneratorRequest{}, "textPrompt"},
		{"watermark without image", &WatermarkRemoverRequest{}, "imageUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.True(t, types.IsErrorCode(err, types.ErrValidation), "want VALIDATION, got %v", types.GetErrorCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestPromptLimitCountsRunes(t *testing.T) {
	// 500 multibyte runes are within the limit even though the byte
	// length is far beyond it.
	req := &HairstyleRequest{ImageURL: testImageURL, TextPrompt: strings.Repeat("中", types.MaxPromptLength)}
	require.Greater(t, len(req.TextPrompt), types.MaxPromptLength)
	assert.NoError(t, req.Validate())

	req.TextPrompt += "中"
	assert.Error(t, req.Validate())
}

func TestOptionalFieldsOmittedFromJSON(t *testing.T) {
	minimal, err := json.Marshal(&CartoonRequest{ImageURL: testImageURL})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(minimal, &got))
	assert.Equal(t, map[string]any{"imageUrl": testImageURL}, got)

	full, err := json.Marshal(&CartoonRequest{
		ImageURL:      testImageURL,
		StyleImageURL: String(testStyleURL),
		TextPrompt:    String("watercolor"),
	})
	require.NoError(t, err)

	got = map[string]any{}
	require.NoError(t, json.Unmarshal(full, &got))
	assert.Equal(t, testStyleURL, got["styleImageUrl"])
	assert.Equal(t, "watercolor", got["textPrompt"])
}

func TestRequestFieldSpellings(t *testing.T) {
	tests := []struct {
		name     string
		req      api.Request
		wantKeys []string
	}{
		{
			"expand photo",
			&ExpandPhotoRequest{ImageURL: testImageURL, LeftPadding: 1, RightPadding: 2, TopPadding: 3, BottomPadding: 4},
			[]string{"imageUrl", "leftPadding", "rightPadding", "topPadding", "bottomPadding"},
		},
		{
			"hair color rgb",
			&HairColorRGBRequest{ImageURL: testImageURL, HairHexColor: "#AA32F1", ColorStrength: 0.7},
			[]string{"imageUrl", "hairHexColor", "colorStrength"},
		},
		{
			"ai design",
			&AIDesignRequest{TextPrompt: "poster", Resolution: "1:1", EnhancePrompt: true},
			[]string{"textPrompt", "resolution", "enhancePrompt"},
		},
		{
			"image2image",
			&Image2ImageRequest{ImageURL: testImageURL, Strength: 0.5, TextPrompt: "x", StyleImageURL: String(testStyleURL), StyleStrength: Float64(0.3)},
			[]string{"imageUrl", "strength", "textPrompt", "styleImageUrl", "styleStrength"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.req)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(data, &got))
			require.Len(t, got, len(tt.wantKeys))
			for _, key := range tt.wantKeys {
				assert.Contains(t, got, key)
			}
		})
	}
}

func TestZeroStrengthStaysOnTheWire(t *testing.T) {
	// Strength 0 is a meaningful value and must not be dropped by
	// omitempty.
	data, err := json.Marshal(&Image2ImageRequest{ImageURL: testImageURL, Strength: 0, TextPrompt: "x"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Contains(t, got, "strength")
	assert.Equal(t, float64(0), got["strength"])
}

func TestPointerHelpers(t *testing.T) {
	s := String("hello")
	require.NotNil(t, s)
	assert.Equal(t, "hello", *s)

	f := Float64(0.25)
	require.NotNil(t, f)
	assert.Equal(t, 0.25, *f)
}
