package xmlscan

// sharedProductions holds every production whose body is identical across
// XML 1.0 and 1.1 — everything except prolog, VersionInfo, and VersionNum,
// which are looked up through the active *grammar instead (§4.4).
var sharedProductions = map[prodID]productionFn{
	pDocument:           docProd,
	pXMLDeclResume:      xmlDeclResume,
	pMisc:               miscProd,
	pXMLDecl:            xmlDeclProd,
	pEq:                 eqProd,
	pS:                  sProd,
	pName:               nameProd,
	pCharData:           charDataProd,
	pComment:            commentProd,
	pPI:                 piProd,
	pPITarget:           piTargetProd,
	pCDSect:             cdSectProd,
	pCDStart:            cdStartProd,
	pCData:              cdataProd,
	pCDEnd:              cdEndProd,
	pDoctypedecl:        doctypedeclProd,
	pDeclSep:            declSepProd,
	pIntSubset:          intSubsetProd,
	pMarkupdecl:         markupdeclProd,
	pExtSubset:          extSubsetProd,
	pExtSubsetDecl:      extSubsetDeclProd,
	pSDDecl:             sddeclProd,
	pElement:            elementProd,
	pAttribute:          attributeProd,
	pETag:               etagProd,
	pContent:            contentProd,
	pElementdecl:        elementdeclProd,
	pAttlistDecl:        attlistDeclProd,
	pAttDef:             attDefProd,
	pAttType:            attTypeProd,
	pStringType:         stringTypeProd,
	pTokenizedType:      tokenizedTypeProd,
	pEnumeratedType:     enumeratedTypeProd,
	pNotationType:       notationTypeProd,
	pEnumeration:        enumerationProd,
	pConditionalSect:    conditionalSectProd,
	pIgnoreSectContents: ignoreSectContentsProd,
	pCharRef:            charRefProd,
	pReference:          referenceProd,
	pEntityRef:          entityRefProd,
	pPEReference:        peReferenceProd,
	pEntityDecl:         entityDeclProd,
	pExternalID:         externalIDProd,
	pTextDecl:           textDeclProd,
	pEncodingDecl:       encodingDeclProd,
	pNotationDecl:       notationDeclProd,
	pAttValue:           attValueProd,
	pSystemLiteral:      systemLiteralProd,
	pPubidLiteral:       pubidLiteralProd,
}
