package themecheck

// Checks returns the full set of theme quality checks in declared order.
// Order affects output only; the checks are independent.
func (th *Theme) Checks() []Check {
	return []Check{
		NewCheck("Check that all SVG logos have correct dimensions", th.checkVectorImageDimensions),
		NewCheck("Check that all backgrounds and overlays have correct dimensions", th.checkRasterImageDimensions),
		NewCheck("Check that SVG files are properly formatted", th.checkSVGFormatting),
		NewCheck("Check that XML files are properly formatted", th.checkXMLFormatting),
		NewCheck("Check that each system with metadata also has all required images", th.checkSystemsAreComplete),
		NewCheck("Check that all images have an associated system metadata", th.checkAllImagesHaveSystem),
		NewCheck("Check that all files have the appropriate extension", th.checkFileExtensions),
		NewCheck("Check that all required variables in systems metadata are present", th.checkMetadataIsComplete),
		NewCheck("Check that all theme variables are translated", th.checkAllVariablesFullyTranslated),
		NewCheck("Check that all metadata files have translations for all required languages", th.checkAllSystemsFullyTranslated),
		NewCheck("Check that no collections are missing from the collections metadata file", th.checkNoMissingCollections),
		NewCheck("Check that no two background images are visually the same", th.checkDuplicatedBackgrounds),
		NewCheck("Check that overlay images match their corresponding background images", th.checkOverlaysMatchBackgrounds),
	}
}
