package registry

const glSample = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
    <comment>Sample of the OpenGL registry</comment>
    <enums namespace="GL" group="DataType" type="bitmask">
        <enum value="0x1400" name="GL_BYTE"/>
        <enum value="0x1401" name="GL_UNSIGNED_BYTE"/>
        <enum value="5122" name="GL_SHORT"/>
        <enum value="0x8892" name="GL_ARRAY_BUFFER"/>
        <enum value="0x0004" name="GL_TRIANGLES"/>
        <enum value="0x0004" name="GL_TRIANGLES_ALIAS" comment="later definition wins"/>
        <enum value="0xFFFFFFFFFFFFFFFF" name="GL_TIMEOUT_IGNORED"/>
        <enum name="GL_MISSING_VALUE" comment="no value attribute"/>
        <unused start="0x1402" end="0x1403"/>
    </enums>
    <feature api="gles2" name="GL_ES_VERSION_2_0">
        <require>
            <enum name="GL_BYTE"/>
        </require>
    </feature>
</registry>
`
