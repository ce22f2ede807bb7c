package catalog

// Built-in catalog of the CoCoMac literature maps.

// defaultAllMaps lists every map with curated data.
var defaultAllMaps = []string{
	"A85", "A86", "AAC85", "AAES90", "AB89", "ABMR98", "ABP80", "AF42", "AF45",
	"AHGWU00", "AI92", "AIC87", "AM02", "AM84", "AP84", "APA83", "APPC92",
	"ASM94", "B00", "B05", "B09", "B81", "B84", "B88", "B92", "BAS90", "BB47",
	"BB95", "BD77", "BD90", "BDG81", "BDU91", "BF95", "BFA95", "BFNV86", "BG93",
	"BGDR99", "BGSB85", "BHD91", "BJ76", "BK83", "BK98", "BK99", "BMLU97",
	"BP87", "BP89", "BP92", "BR75", "BR76", "BR98", "BS83", "BSM96", "BUD90",
	"C34", "CCHR95", "CCTCR00", "CDG93", "CG85", "CG89a", "CG89b", "CGG82",
	"CGMBOFal99", "CGOG83", "CGOG88", "CP94", "CP95b", "CP99", "CSCG95",
	"CSDW93", "CST97", "DBDU93", "DCG98", "DD93", "DDBR93", "DDC90", "DLRPK03",
	"DRV85", "DS91", "DS93", "DU86", "FAG85", "FBV97", "FJ81", "FJB80", "FM86",
	"FMOM86", "FSAG86", "FV87", "FV91", "FXM97", "G82", "G89", "GBP87", "GC97",
	"GCSC00", "GFBSZ96", "GFGK99", "GFKG99", "GG81", "GG88", "GG95", "GGC99",
	"GGKFLM01", "GGS81", "GLKR84", "GM", "GP83", "GP85", "GSC85", "GSG88",
	"GSMU97", "GSS84", "GTVB90", "GYC95", "HD91", "HDS95", "HHFSR80", "HK90",
	"HM95", "HMRJ95", "HMS88", "HPS91", "HSK98a", "HSK98b", "HSK99b", "HTNT00",
	"HV76", "HW72", "HYL81", "IAC87a", "IAC87b", "IAK99", "IK87", "IM69",
	"IST96", "ITNAT96", "IVB86", "IY87", "IY88", "IYSS87", "J49", "J85",
	"JB76a", "JDMRH95", "JT75", "K78", "K94", "KA77", "KCTEC95", "KH88",
	"KHHJ97", "KK75", "KK77", "KK93", "KSI03", "KVR82", "KW88", "L34", "L45",
	"L86", "LCRM01", "LMCR93", "LMGM99", "LMWR02", "LPS94", "LRCM03", "LSB86",
	"LV00a", "LV00b", "LYL95", "M80", "MB73", "MB84", "MB90", "MBG91", "MBMM93",
	"MCF86", "MCGR86", "MCSGP04", "MDRLHJ95", "MGBFSMal01", "MGGKL98",
	"MGGMC03", "MGM92", "MH02", "MJ97", "MLFR89", "MLR85", "MLR91", "MLWJR05",
	"MM82a", "MM82b", "MM82c", "MM84", "MMLW83", "MMM87", "MMP81", "MPP96",
	"MPP99a", "MRV00", "MV83", "MV87", "MV92", "MV93", "NHYM96", "NK78",
	"NKWKKMal01", "NMV80", "NMV86", "NPP87", "NPP90a", "NPP90b", "O52", "OMG96",
	"P81a", "PA34", "PA81", "PA98", "PBK86", "PCG81", "PG89", "PG91a", "PG91b",
	"PGCK85", "PHMN86", "PHT00", "PK85", "PM59", "PP02", "PP84", "PP88", "PP99",
	"PRA87", "PS73", "PS82", "PSB88", "PVD73", "PVM81", "R00", "RA63", "RACR99",
	"RAP87", "RB77", "RB79", "RB80a", "RBMWJ98", "RD96", "RGBG97", "RLBMW94",
	"RLM96", "RP79", "RP83", "RP93", "RTFMGR99", "RTMB99", "RTMKBW98", "RV77",
	"RV87", "RV94", "RV99", "S01", "S70", "S72", "S73", "SA00", "SA70", "SA90",
	"SA94b", "SB83", "SBZ98", "SCGMWC96", "SDGM89", "SG85", "SG88", "SH03",
	"SJ02", "SK96", "SK97", "SMB68", "SMKB95", "SMM82", "SP80", "SP84", "SP86",
	"SP89a", "SP89b", "SP90", "SP91a", "SP94", "SQK00", "SR88", "SRV88", "SS87",
	"SSA96", "SSS91", "SSTH00", "ST96", "STR93", "SUD90", "SYTHFI86", "SZ85",
	"SZ95", "TBVD88", "THSYFI86", "TJ74", "TJ76", "TMK80", "TNHTMTal04",
	"TRB02", "TT93", "TTNI97", "TWC86", "U85", "UD86a", "UD86b", "UDGM84",
	"UGM83", "UM79", "V76", "V82", "V85a", "V85b", "V93", "VFDOK90", "VMB81",
	"VNB82", "VNM84", "VNMB86", "VP75a", "VP75c", "VP87", "VPR87", "VV19",
	"VZ78", "W38", "W40", "W43", "W44", "WA91", "WBU93", "WBU94", "WF46",
	"WPW69", "WR97", "WSMSPT52", "WUB91", "WVA89", "WW43", "Y00", "YI81",
	"YI85", "YI88", "YP85", "YP88", "YP89", "YP91b", "YP93", "YP94", "YP95",
	"YP97", "Z69", "Z71", "Z73", "Z77", "Z78a", "Z78b", "Z78c", "ZR03",
	"ZSCR93", "AC80", "W58", "SP91b", "SP78", "SA94a", "RB80b", "PW51", "PA91",
	"NPP88", "MW87", "MGK93", "AP00", "CP95a", "BP82", "AP34", "YTHI90", "PP94",
	"L33", "JCH78",
}

// defaultMappingFailures lists maps whose mapping data is unusable.
var defaultMappingFailures = []string{
	"AF45", "AM02", "APPC92", "BB47", "BFA95", "DD93", "FBV97", "GM", "HD91",
	"HMRJ95", "HYL81", "IVB86", "KVR82", "LV00b", "O52", "OMG96", "PHMN86",
	"PRA87", "RP83", "RV94", "S01", "S73", "SCGMWC96", "SG85", "SH03", "SP84",
	"SSS91", "STR93", "SZ95", "TWC86", "W40", "WBU94", "YP93", "Z69", "AP00",
	"L33",
}

// defaultConnectivityFailures lists maps whose connectivity data is unusable.
var defaultConnectivityFailures = []string{
	"AB89", "ABMR98", "ABP80", "AF42", "AF45", "B09", "B81", "B92", "BB47",
	"BFA95", "BFNV86", "BGSB85", "BP89", "BUD90", "C34", "CGG82", "CGOG83",
	"CP94", "CSDW93", "DCG98", "DRV85", "FAG85", "FJB80", "FM86", "FV87",
	"FV91", "G89", "GFGK99", "GFKG99", "GG81", "GGC99", "GM", "GSC85", "GSG88",
	"GTVB90", "HHFSR80", "HK90", "HM95", "HMRJ95", "HV76", "HW72", "IM69",
	"IST96", "J49", "KH88", "KHHJ97", "KK75", "L45", "LMWR02", "LV00a", "LYL95",
	"MB73", "MB84", "MBMM93", "MCF86", "MGM92", "MJ97", "MM84", "MV87", "NMV80",
	"O52", "PA34", "PGCK85", "PHMN86", "PM59", "PVD73", "R00", "RLBMW94",
	"RLM96", "S01", "S70", "S72", "S73", "SA70", "SH03", "SK97", "SMM82",
	"SYTHFI86", "SZ85", "SZ95", "THSYFI86", "TJ74", "TMK80", "U85", "UDGM84",
	"UGM83", "UM79", "V76", "V82", "V85a", "V85b", "VFDOK90", "VNB82", "VNM84",
	"VNMB86", "VP75c", "VZ78", "W40", "W43", "W44", "WF46", "WPW69", "WR97",
	"WW43", "Z69", "Z71", "Z73", "Z77", "Z78a", "Z78b", "Z78c", "ZR03", "AC80",
	"W58", "RB80b", "MW87", "AP00", "AP34", "L33",
}

// defaultIntramapOverlaps lists maps with overlap relations between their own regions.
var defaultIntramapOverlaps = []string{
	"DU86",
}
